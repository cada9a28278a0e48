package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curbz/sunside/internal/airports"
	"github.com/curbz/sunside/internal/engine"
	"github.com/curbz/sunside/internal/mockserver"
	"github.com/curbz/sunside/internal/scenic"
	"github.com/curbz/sunside/internal/sunapi"
)

func newTestServer(t *testing.T, sun *sunapi.Client) *httptest.Server {
	t.Helper()
	s := NewServer(Config{StreamIntervalMs: 1}, engine.New(engine.Config{}), airports.NewResolver(), sun)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestFlightEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	var got flightResponse
	status := getJSON(t, srv.URL+"/api/v1/flight?origin=jfk&destination=LAX&departure=2024-01-15T16:00:00Z", &got)
	require.Equal(t, http.StatusOK, status)

	assert.True(t, got.Success)
	assert.Equal(t, "JFK", got.Origin.Code)
	assert.Equal(t, "LAX", got.Destination.Code)
	assert.InDelta(t, 3974, got.DistanceKm, 60)
	assert.Greater(t, got.DurationHours, 4.0)
	assert.Len(t, got.Path, 20)
	assert.Contains(t, []scenic.Side{scenic.SideLeft, scenic.SideRight, scenic.SideBoth, scenic.SideNone}, got.ScenicSide)
	assert.Equal(t, scenic.RecommendedSeats(got.ScenicSide), got.Seats)
	assert.False(t, got.Sunrise.IsZero())
	assert.False(t, got.Sunset.IsZero())
}

func TestFlightEndpointErrors(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"missing params", "", http.StatusBadRequest},
		{"unknown origin", "?origin=XXX&destination=LAX&departure=2024-01-15T16:00:00Z", http.StatusNotFound},
		{"unknown destination", "?origin=JFK&destination=XXX&departure=2024-01-15T16:00:00Z", http.StatusNotFound},
		{"bad departure", "?origin=JFK&destination=LAX&departure=yesterday", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got errorResponse
			status := getJSON(t, srv.URL+"/api/v1/flight"+tc.query, &got)
			assert.Equal(t, tc.want, status)
			assert.False(t, got.Success)
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestFlightEndpointMethodGuard(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/api/v1/flight", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestFlightEndpointWithEnrichment(t *testing.T) {
	mock := httptest.NewServer(mockserver.Handler())
	defer mock.Close()

	srv := newTestServer(t, sunapi.New(mock.URL, time.Second))

	var got flightResponse
	status := getJSON(t, srv.URL+"/api/v1/flight?origin=JFK&destination=LAX&departure=2024-01-15T16:00:00Z", &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	// The mock serves the same ephemeris, so enrichment must still yield
	// plausible events on the flight date.
	assert.Equal(t, 2024, got.Sunrise.Year())
	assert.True(t, got.Sunset.After(got.Sunrise))
}

func TestPathEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	var got pathResponse
	status := getJSON(t, srv.URL+"/api/v1/path?origin=JFK&destination=LHR&points=50", &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	require.Len(t, got.Path, 50)
	assert.InDelta(t, got.Origin.Coord.Lat, got.Path[0].Lat, 1e-9)
	assert.InDelta(t, got.Destination.Coord.Lon, got.Path[49].Lon, 1e-9)

	var defaulted pathResponse
	status = getJSON(t, srv.URL+"/api/v1/path?origin=JFK&destination=LHR", &defaulted)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, defaulted.Path, 20)

	var bad errorResponse
	status = getJSON(t, srv.URL+"/api/v1/path?origin=JFK&destination=LHR&points=many", &bad)
	assert.Equal(t, http.StatusBadRequest, status)

	status = getJSON(t, srv.URL+"/api/v1/path?origin=JFK&destination=LHR&points=1", &bad)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSeatsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		side  string
		seats []string
	}{
		{"left", []string{"A"}},
		{"right", []string{"F"}},
		{"both", []string{"A", "F"}},
		{"none", []string{}},
	}
	for _, tc := range tests {
		var got seatsResponse
		status := getJSON(t, srv.URL+"/api/v1/seats?side="+tc.side, &got)
		require.Equal(t, http.StatusOK, status, tc.side)
		assert.Equal(t, tc.seats, got.Seats, tc.side)
	}

	var bad errorResponse
	status := getJSON(t, srv.URL+"/api/v1/seats?side=middle", &bad)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, bad.Success)
}

func TestSunEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	var got sunResponse
	status := getJSON(t, srv.URL+"/api/v1/sun?at=2024-03-20T12:00:00Z&lat=51.48&lon=0", &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	require.NotNil(t, got.Position)
	// Near the March equinox at Greenwich noon the sun stands close to
	// the local meridian.
	assert.InDelta(t, 180, got.Position.AzimuthDeg, 10)
	assert.InDelta(t, 0, got.Subsolar.Lat, 2)

	var noPos sunResponse
	status = getJSON(t, srv.URL+"/api/v1/sun?at=2024-03-20T12:00:00Z", &noPos)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, noPos.Position)

	var bad errorResponse
	status = getJSON(t, srv.URL+"/api/v1/sun?at=2024-03-20T12:00:00Z&lat=91&lon=0", &bad)
	assert.Equal(t, http.StatusBadRequest, status)

	status = getJSON(t, srv.URL+"/api/v1/sun?at=noonish", &bad)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStreamFlight(t *testing.T) {
	srv := newTestServer(t, nil)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") +
		"/api/v1/flight/stream?origin=JFK&destination=LAX&departure=2024-01-15T16:00:00Z"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	var frames []scenic.Sample
	for {
		var sample scenic.Sample
		if err := conn.ReadJSON(&sample); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				break
			}
			t.Fatalf("read frame: %v", err)
		}
		frames = append(frames, sample)
	}

	require.Len(t, frames, 20)
	assert.Equal(t, 0.0, frames[0].Fraction)
	assert.Equal(t, 1.0, frames[len(frames)-1].Fraction)
	for i := 1; i < len(frames); i++ {
		assert.Greater(t, frames[i].Fraction, frames[i-1].Fraction)
	}
}

func TestStreamFlightRejectsBadQuery(t *testing.T) {
	srv := newTestServer(t, nil)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/flight/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
