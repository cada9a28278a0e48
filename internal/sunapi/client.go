// Package sunapi is a client for the sunrise-sunset.org style web API.
// It is a best-effort enrichment over the local closed-form computation:
// callers race it with a timeout and fall back to pkg/solar on any failure.
package sunapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/curbz/sunside/pkg/geo"
	"github.com/curbz/sunside/pkg/solar"
)

// DefaultBaseURL is the public sunrise-sunset.org endpoint.
const DefaultBaseURL = "https://api.sunrise-sunset.org"

// DefaultTimeout bounds a lookup so a slow upstream can never stall the
// deterministic local computation it enriches.
const DefaultTimeout = 1500 * time.Millisecond

// Config is the `sun_lookup` section of the YAML configuration.
type Config struct {
	Enabled   bool   `yaml:"enabled"`
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against the given base URL (DefaultBaseURL when
// empty) with a per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FromConfig returns a client per config, or nil when the lookup is
// disabled. A nil *Client is a valid "no enrichment" value.
func FromConfig(cfg Config) *Client {
	if !cfg.Enabled {
		return nil
	}
	return New(cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond)
}

// response mirrors the documented sunrise-sunset.org JSON shape (with
// formatted=0, times are ISO 8601).
type response struct {
	Results struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"results"`
	Status string `json:"status"`
}

// Lookup fetches sunrise/sunset for a location and calendar date. Either
// returned field may be nil when the upstream reports no event.
func (c *Client) Lookup(ctx context.Context, loc geo.Coordinate, date time.Time) (solar.SunTimes, error) {
	u, err := url.Parse(c.baseURL + "/json")
	if err != nil {
		return solar.SunTimes{}, fmt.Errorf("error parsing base URL: %w", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	q.Set("date", date.UTC().Format("2006-01-02"))
	q.Set("formatted", "0")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return solar.SunTimes{}, fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return solar.SunTimes{}, fmt.Errorf("error performing HTTP GET to %s: %w", u.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return solar.SunTimes{}, fmt.Errorf("received non-OK status code %d from sun lookup API. Response: %s",
			resp.StatusCode, string(body))
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return solar.SunTimes{}, fmt.Errorf("error decoding response body: %w", err)
	}
	if decoded.Status != "OK" {
		return solar.SunTimes{}, fmt.Errorf("sun lookup API returned status %q", decoded.Status)
	}

	var times solar.SunTimes
	if t, err := time.Parse(time.RFC3339, decoded.Results.Sunrise); err == nil {
		utc := t.UTC()
		times.Sunrise = &utc
	}
	if t, err := time.Parse(time.RFC3339, decoded.Results.Sunset); err == nil {
		utc := t.UTC()
		times.Sunset = &utc
	}
	return times, nil
}
