// Package mockserver fakes the sunrise-sunset.org JSON API so the sunapi
// client can be exercised without network access. Responses are computed
// from the local closed-form ephemeris, which keeps them deterministic and
// lets tests compare client output against pkg/solar directly.
package mockserver

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/curbz/sunside/pkg/geo"
	"github.com/curbz/sunside/pkg/solar"
)

type results struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

type response struct {
	Results results `json:"results"`
	Status  string  `json:"status"`
}

// Handler returns the mock API handler, for use with httptest servers.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/json", jsonHandler)
	return mux
}

// Start starts the mock HTTP server on the given port (e.g. "8089").
// It returns the *http.Server so the caller can shut it down when desired.
func Start(port string) *http.Server {
	srv := &http.Server{Addr: ":" + port, Handler: Handler()}
	go func() {
		log.Printf("mockserver: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("mockserver: ListenAndServe error: %v", err)
		}
	}()
	return srv
}

func jsonHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeStatus(w, "INVALID_REQUEST")
		return
	}

	date := time.Now().UTC()
	if ds := q.Get("date"); ds != "" {
		parsed, err := time.Parse("2006-01-02", ds)
		if err != nil {
			writeStatus(w, "INVALID_DATE")
			return
		}
		date = parsed
	}

	times := solar.RiseSet(geo.Coordinate{Lat: lat, Lon: lng}, date)

	resp := response{Status: "OK"}
	if times.Sunrise != nil {
		resp.Results.Sunrise = times.Sunrise.Format(time.RFC3339)
	}
	if times.Sunset != nil {
		resp.Results.Sunset = times.Sunset.Format(time.RFC3339)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("mockserver: encode error: %v", err)
	}
}

func writeStatus(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response{Status: status})
}
