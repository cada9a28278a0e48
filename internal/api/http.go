// Package api exposes the flight sun-geometry engine over HTTP: a JSON
// query API plus a WebSocket stream of per-sample sun positions for
// timeline animation.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mohae/deepcopy"

	"github.com/curbz/sunside/internal/airports"
	"github.com/curbz/sunside/internal/engine"
	"github.com/curbz/sunside/internal/scenic"
	"github.com/curbz/sunside/internal/sunapi"
	"github.com/curbz/sunside/pkg/geo"
	"github.com/curbz/sunside/pkg/solar"
	"github.com/curbz/sunside/pkg/util"
)

// Config is the `server` section of the YAML configuration.
type Config struct {
	Addr             string `yaml:"addr"`
	StreamIntervalMs int    `yaml:"stream_interval_ms"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type Server struct {
	eng      *engine.Engine
	airports *airports.Resolver
	sun      *sunapi.Client // nil when the external lookup is disabled
	interval time.Duration
	mux      *http.ServeMux
}

func NewServer(cfg Config, eng *engine.Engine, resolver *airports.Resolver, sun *sunapi.Client) *Server {
	interval := time.Duration(cfg.StreamIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	s := &Server{
		eng:      eng,
		airports: resolver,
		sun:      sun,
		interval: interval,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.health)
	s.mux.HandleFunc("/api/v1/flight", s.flight)
	s.mux.HandleFunc("/api/v1/flight/stream", s.streamFlight)
	s.mux.HandleFunc("/api/v1/path", s.path)
	s.mux.HandleFunc("/api/v1/seats", s.seats)
	s.mux.HandleFunc("/api/v1/sun", s.sunPosition)
}

// --- response shapes ---

type flightResponse struct {
	Success     bool             `json:"success"`
	Origin      airports.Airport `json:"origin"`
	Destination airports.Airport `json:"destination"`
	engine.FlightSunData
}

type pathResponse struct {
	Success     bool             `json:"success"`
	Origin      airports.Airport `json:"origin"`
	Destination airports.Airport `json:"destination"`
	Path        []geo.Coordinate `json:"path"`
}

type seatsResponse struct {
	Success bool        `json:"success"`
	Side    scenic.Side `json:"side"`
	Seats   []string    `json:"seats"`
}

type sunResponse struct {
	Success  bool            `json:"success"`
	At       time.Time       `json:"at"`
	Subsolar geo.Coordinate  `json:"subsolar"`
	Position *solar.Position `json:"position,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// flightQuery resolves the shared origin/destination/departure parameters.
func (s *Server) flightQuery(w http.ResponseWriter, r *http.Request) (origin, dest airports.Airport, departure time.Time, ok bool) {
	q := r.URL.Query()
	originCode := q.Get("origin")
	destCode := q.Get("destination")
	departureStr := q.Get("departure")
	if originCode == "" || destCode == "" || departureStr == "" {
		writeError(w, http.StatusBadRequest, "origin, destination and departure are required")
		return
	}

	var err error
	if origin, err = s.airports.Resolve(originCode); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if dest, err = s.airports.Resolve(destCode); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if departure, err = util.ParseInstant(departureStr); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	return origin, dest, departure, true
}

func (s *Server) flight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	origin, dest, departure, ok := s.flightQuery(w, r)
	if !ok {
		return
	}

	data, err := s.eng.ComputeFlightSunData(origin.Coord, dest.Coord, departure)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	s.enrichSunTimes(r, origin.Coord, &data)

	writeJSON(w, flightResponse{
		Success:       true,
		Origin:        origin,
		Destination:   dest,
		FlightSunData: data,
	})
}

// enrichSunTimes overlays sunrise/sunset from the external lookup when it
// is configured and answers in time. Any failure leaves the locally
// computed values in place.
func (s *Server) enrichSunTimes(r *http.Request, loc geo.Coordinate, data *engine.FlightSunData) {
	if s.sun == nil {
		return
	}
	times, err := s.sun.Lookup(r.Context(), loc, data.Departure)
	if err != nil {
		log.Printf("sun lookup failed, keeping local values: %v", err)
		return
	}
	if times.Sunrise != nil {
		data.Sunrise = *times.Sunrise
	}
	if times.Sunset != nil {
		data.Sunset = *times.Sunset
	}
}

func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	q := r.URL.Query()
	originCode := q.Get("origin")
	destCode := q.Get("destination")
	if originCode == "" || destCode == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	origin, err := s.airports.Resolve(originCode)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	dest, err := s.airports.Resolve(destCode)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	numPoints := 0
	if p := q.Get("points"); p != "" {
		if numPoints, err = strconv.Atoi(p); err != nil {
			writeError(w, http.StatusBadRequest, "points must be an integer")
			return
		}
	}

	path, err := s.eng.GeneratePath(origin.Coord, dest.Coord, numPoints)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, pathResponse{Success: true, Origin: origin, Destination: dest, Path: path})
}

func (s *Server) seats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	side := scenic.Side(r.URL.Query().Get("side"))
	switch side {
	case scenic.SideLeft, scenic.SideRight, scenic.SideBoth, scenic.SideNone:
	default:
		writeError(w, http.StatusBadRequest, "side must be one of left, right, both, none")
		return
	}
	writeJSON(w, seatsResponse{Success: true, Side: side, Seats: scenic.RecommendedSeats(side)})
}

func (s *Server) sunPosition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	q := r.URL.Query()

	at := time.Now().UTC()
	if atStr := q.Get("at"); atStr != "" {
		var err error
		if at, err = util.ParseInstant(atStr); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	resp := sunResponse{Success: true, At: at, Subsolar: solar.SubsolarPoint(at)}

	latStr, lonStr := q.Get("lat"), q.Get("lon")
	if latStr != "" || lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		loc := geo.Coordinate{Lat: lat, Lon: lon}
		if latErr != nil || lonErr != nil || !loc.Valid() {
			writeError(w, http.StatusBadRequest, "lat and lon must be valid coordinates")
			return
		}
		pos := solar.PositionAt(at, loc)
		resp.Position = &pos
	}

	writeJSON(w, resp)
}

// streamFlight upgrades to a WebSocket and plays back the classified
// trajectory one sample per frame, so a timeline UI can animate the
// flight without recomputing anything.
func (s *Server) streamFlight(w http.ResponseWriter, r *http.Request) {
	origin, dest, departure, ok := s.flightQuery(w, r)
	if !ok {
		return
	}

	samples, err := s.eng.Trajectory(origin.Coord, dest.Coord, departure)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Snapshot before handing the data to the writer loop so nothing the
	// handler does afterwards can race with the frames in flight.
	snap := deepcopy.Copy(samples).([]scenic.Sample)

	done := make(chan struct{})
	go func() {
		// Read pump: detect the client going away.
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := range snap {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := util.SendJSON(conn, snap[i]); err != nil {
				log.Printf("stream write failed: %v", err)
				return
			}
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// --- helpers ---

func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Success: false, Error: msg})
}
