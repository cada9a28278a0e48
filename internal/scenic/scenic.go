// Package scenic decides which side of the aircraft has the sun in view
// for a flight, by sampling the solar position along the great-circle
// route and reducing the samples to a single left/right/both/none call.
package scenic

import (
	"time"

	"github.com/curbz/sunside/pkg/geo"
	"github.com/curbz/sunside/pkg/solar"
)

// Side is the lateral side of the aircraft with the sun in view.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
	SideNone  Side = "none"
)

const (
	// DefaultSamples is the number of points sampled along the route.
	DefaultSamples = 20
	// DefaultSideThresholdDeg separates a true lateral sun from
	// ahead/behind noise around the nose and tail.
	DefaultSideThresholdDeg = 5.0
	// DefaultVisibilityFloorDeg is the civil twilight altitude below which
	// the sun is not considered usefully visible.
	DefaultVisibilityFloorDeg = -6.0
)

// Config tunes the classifier. Zero values take the defaults above.
type Config struct {
	Samples            int     `yaml:"samples"`
	SideThresholdDeg   float64 `yaml:"side_threshold_deg"`
	VisibilityFloorDeg float64 `yaml:"visibility_floor_deg"`
}

func (c Config) withDefaults() Config {
	if c.Samples < 2 {
		c.Samples = DefaultSamples
	}
	if c.SideThresholdDeg <= 0 {
		c.SideThresholdDeg = DefaultSideThresholdDeg
	}
	if c.VisibilityFloorDeg == 0 {
		c.VisibilityFloorDeg = DefaultVisibilityFloorDeg
	}
	return c
}

// Sample is one classified point along the route. The API layer streams
// these so a timeline view can animate the flight.
type Sample struct {
	Fraction    float64        `json:"fraction"`
	Coord       geo.Coordinate `json:"coord"`
	BearingDeg  float64        `json:"bearing_deg"`
	Sun         solar.Position `json:"sun"`
	RelAngleDeg float64        `json:"rel_angle_deg"`
	Visible     bool           `json:"visible"`
}

// Trajectory samples the flight at cfg.Samples evenly spaced fractions.
// The instantaneous bearing at each sample points to the next sample; the
// final sample reuses the previous bearing.
func Trajectory(dep, arr geo.Coordinate, departure time.Time, durationHours float64, cfg Config) []Sample {
	cfg = cfg.withDefaults()
	n := cfg.Samples

	samples := make([]Sample, n)
	prevBearing := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		here := geo.Interpolate(dep, arr, t)

		var bearing float64
		if i < n-1 {
			next := geo.Interpolate(dep, arr, float64(i+1)/float64(n-1))
			bearing = geo.InitialBearing(here, next)
			prevBearing = bearing
		} else {
			bearing = prevBearing
		}

		sun := solar.PositionAtFraction(departure, durationHours, t, here)
		rel := geo.Normalize180(sun.AzimuthDeg - bearing)

		samples[i] = Sample{
			Fraction:    t,
			Coord:       here,
			BearingDeg:  bearing,
			Sun:         sun,
			RelAngleDeg: rel,
			Visible:     sun.AltitudeDeg > cfg.VisibilityFloorDeg,
		}
	}
	return samples
}

// Classify reduces a flight to a scenic side. Samples where the sun sits
// below the visibility floor are discarded; if none survive the answer is
// SideNone. Otherwise a sample with the sun more than the threshold left
// of the nose marks left, more than the threshold right marks right. Both
// flags give SideBoth, a single flag gives that side, and no flag at all
// (sun ahead/behind for the whole flight) also gives SideBoth.
func Classify(dep, arr geo.Coordinate, departure time.Time, durationHours float64, cfg Config) Side {
	cfg = cfg.withDefaults()
	return Reduce(Trajectory(dep, arr, departure, durationHours, cfg), cfg.SideThresholdDeg)
}

// Reduce applies the side reduction to an already computed trajectory.
func Reduce(samples []Sample, sideThresholdDeg float64) Side {
	if sideThresholdDeg <= 0 {
		sideThresholdDeg = DefaultSideThresholdDeg
	}

	visible := false
	hasLeft := false
	hasRight := false
	for _, s := range samples {
		if !s.Visible {
			continue
		}
		visible = true
		if s.RelAngleDeg < -sideThresholdDeg {
			hasLeft = true
		} else if s.RelAngleDeg > sideThresholdDeg {
			hasRight = true
		}
	}

	switch {
	case !visible:
		return SideNone
	case hasLeft && hasRight:
		return SideBoth
	case hasRight:
		return SideRight
	case hasLeft:
		return SideLeft
	default:
		return SideBoth
	}
}

// RecommendedSeats maps a scenic side to window seat letters in a 3-3
// narrow-body layout: A is the left-side window, F the right-side window.
func RecommendedSeats(side Side) []string {
	switch side {
	case SideLeft:
		return []string{"A"}
	case SideRight:
		return []string{"F"}
	case SideBoth:
		return []string{"A", "F"}
	default:
		return []string{}
	}
}
