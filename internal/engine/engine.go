// Package engine composes the geometry and astronomy primitives into the
// single flight sun-geometry computation consumed by the API and CLI.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/curbz/sunside/internal/scenic"
	"github.com/curbz/sunside/pkg/geo"
	"github.com/curbz/sunside/pkg/solar"
)

// ErrInvalidInput flags malformed coordinates, a zero departure instant or
// a non-positive path size. Boundary layers map it to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

// Config tunes the engine. Zero values take the defaults.
type Config struct {
	CruiseSpeedKmh float64       `yaml:"cruise_speed_kmh"`
	PathPoints     int           `yaml:"path_points"`
	Scenic         scenic.Config `yaml:"scenic"`
}

func (c Config) withDefaults() Config {
	if c.CruiseSpeedKmh <= 0 {
		c.CruiseSpeedKmh = geo.DefaultCruiseSpeedKmh
	}
	if c.PathPoints < 2 {
		c.PathPoints = 20
	}
	return c
}

// FlightSunData is the complete result for one flight query. It is built
// once per call and never mutated.
type FlightSunData struct {
	DepartureSun  solar.Position   `json:"departure_sun"`
	ArrivalSun    solar.Position   `json:"arrival_sun"`
	ScenicSide    scenic.Side      `json:"scenic_side"`
	Seats         []string         `json:"recommended_seats"`
	Sunrise       time.Time        `json:"sunrise"`
	Sunset        time.Time        `json:"sunset"`
	DistanceKm    float64          `json:"distance_km"`
	BearingDeg    float64          `json:"bearing_deg"`
	DurationHours float64          `json:"duration_hours"`
	Departure     time.Time        `json:"departure"`
	Arrival       time.Time        `json:"arrival"`
	Path          []geo.Coordinate `json:"path"`
}

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Config returns the effective (defaulted) configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// GeneratePath exposes the route geometry on its own, for callers that
// draw the route without needing sun data.
func (e *Engine) GeneratePath(dep, arr geo.Coordinate, numPoints int) ([]geo.Coordinate, error) {
	if numPoints == 0 {
		numPoints = e.cfg.PathPoints
	}
	return geo.GeneratePath(dep, arr, numPoints)
}

// ComputeFlightSunData runs the full pipeline: distance and duration,
// great-circle path, solar positions at the endpoints, sunrise/sunset
// selection, and the scenic-side classification.
//
// Departure == arrival is a defined degenerate case: distance, duration
// and bearing are all zero and the path repeats the coordinate.
func (e *Engine) ComputeFlightSunData(dep, arr geo.Coordinate, departure time.Time) (FlightSunData, error) {
	if !dep.Valid() || !arr.Valid() {
		return FlightSunData{}, fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)
	}
	if departure.IsZero() {
		return FlightSunData{}, fmt.Errorf("%w: zero departure instant", ErrInvalidInput)
	}
	departure = departure.UTC()

	degenerate := dep == arr

	var distanceKm, bearing, durationHours float64
	if !degenerate {
		distanceKm = geo.DistanceKm(dep, arr)
		bearing = geo.InitialBearing(dep, arr)
		durationHours = geo.FlightDurationHours(distanceKm, e.cfg.CruiseSpeedKmh)
	}
	arrival := departure.Add(time.Duration(durationHours * float64(time.Hour)))

	path, err := geo.GeneratePath(dep, arr, e.cfg.PathPoints)
	if err != nil {
		return FlightSunData{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	side := scenic.Classify(dep, arr, departure, durationHours, e.cfg.Scenic)

	sunrise, sunset := e.selectSunTimes(dep, arr, departure, arrival)

	return FlightSunData{
		DepartureSun:  solar.PositionAt(departure, dep),
		ArrivalSun:    solar.PositionAt(arrival, arr),
		ScenicSide:    side,
		Seats:         scenic.RecommendedSeats(side),
		Sunrise:       sunrise,
		Sunset:        sunset,
		DistanceKm:    distanceKm,
		BearingDeg:    bearing,
		DurationHours: durationHours,
		Departure:     departure,
		Arrival:       arrival,
		Path:          path,
	}, nil
}

// Trajectory returns the classified per-sample trajectory for a flight,
// used by the streaming endpoint.
func (e *Engine) Trajectory(dep, arr geo.Coordinate, departure time.Time) ([]scenic.Sample, error) {
	if !dep.Valid() || !arr.Valid() {
		return nil, fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)
	}
	if departure.IsZero() {
		return nil, fmt.Errorf("%w: zero departure instant", ErrInvalidInput)
	}
	durationHours := 0.0
	if dep != arr {
		durationHours = geo.FlightDurationHours(geo.DistanceKm(dep, arr), e.cfg.CruiseSpeedKmh)
	}
	return scenic.Trajectory(dep, arr, departure.UTC(), durationHours, e.cfg.Scenic), nil
}

// selectSunTimes defaults to the departure location's sunrise/sunset for
// the departure date, but prefers the arrival location's event when that
// event falls strictly inside the flight window, so an event the
// passengers will actually see mid-flight wins. Absent events (polar day
// or night) fall back to the departure instant itself.
func (e *Engine) selectSunTimes(dep, arr geo.Coordinate, departure, arrival time.Time) (sunrise, sunset time.Time) {
	depTimes := solar.RiseSet(dep, departure)
	arrTimes := solar.RiseSet(arr, arrival)

	pick := func(depEvent, arrEvent *time.Time) time.Time {
		chosen := depEvent
		if arrEvent != nil && arrEvent.After(departure) && arrEvent.Before(arrival) {
			chosen = arrEvent
		}
		if chosen == nil {
			return departure
		}
		return *chosen
	}

	return pick(depTimes.Sunrise, arrTimes.Sunrise), pick(depTimes.Sunset, arrTimes.Sunset)
}
