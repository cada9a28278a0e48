package scenic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curbz/sunside/pkg/geo"
)

var (
	jfk = geo.Coordinate{Lat: 40.6413, Lon: -73.7781}
	lax = geo.Coordinate{Lat: 33.9425, Lon: -118.4081}
)

func TestRecommendedSeatsTotality(t *testing.T) {
	cases := []struct {
		side Side
		want []string
	}{
		{SideNone, []string{}},
		{SideLeft, []string{"A"}},
		{SideRight, []string{"F"}},
		{SideBoth, []string{"A", "F"}},
		{Side("garbage"), []string{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RecommendedSeats(c.side), "side %q", c.side)
	}
}

func TestNightFlightIsNone(t *testing.T) {
	// JFK to LAX departing 03:00 UTC in winter: the whole flight is in
	// darkness across the continent.
	dep := time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)
	duration := geo.FlightDurationHours(geo.DistanceKm(jfk, lax), 800)

	side := Classify(jfk, lax, dep, duration, Config{})
	assert.Equal(t, SideNone, side)
	assert.Empty(t, RecommendedSeats(side))
}

func TestWestboundWinterDaytimeIsLeft(t *testing.T) {
	// Flying west across the US in winter daylight, the sun sits to the
	// south, which is the left side of a westbound aircraft.
	dep := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	duration := geo.FlightDurationHours(geo.DistanceKm(jfk, lax), 800)

	assert.Equal(t, SideLeft, Classify(jfk, lax, dep, duration, Config{}))
}

func TestEastboundWinterDaytimeIsRight(t *testing.T) {
	dep := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	duration := geo.FlightDurationHours(geo.DistanceKm(lax, jfk), 800)

	assert.Equal(t, SideRight, Classify(lax, jfk, dep, duration, Config{}))
}

func TestBothFallbackWhenNoSideDominates(t *testing.T) {
	// With the side threshold opened all the way up, no visible sample
	// can register a side, and a daylight flight falls back to both.
	dep := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	duration := geo.FlightDurationHours(geo.DistanceKm(jfk, lax), 800)

	side := Classify(jfk, lax, dep, duration, Config{SideThresholdDeg: 179.5})
	assert.Equal(t, SideBoth, side)
	assert.Equal(t, []string{"A", "F"}, RecommendedSeats(side))
}

func TestTrajectoryShape(t *testing.T) {
	dep := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	samples := Trajectory(jfk, lax, dep, 5, Config{Samples: 24})
	require.Len(t, samples, 24)

	assert.Zero(t, samples[0].Fraction)
	assert.Equal(t, 1.0, samples[len(samples)-1].Fraction)
	assert.Equal(t, jfk, samples[0].Coord)
	assert.Equal(t, lax, samples[len(samples)-1].Coord)

	// The final sample reuses the previous bearing.
	assert.Equal(t, samples[len(samples)-2].BearingDeg, samples[len(samples)-1].BearingDeg)

	for _, s := range samples {
		assert.GreaterOrEqual(t, s.Sun.AzimuthDeg, 0.0)
		assert.Less(t, s.Sun.AzimuthDeg, 360.0)
		assert.Greater(t, s.RelAngleDeg, -180.0-1e-9)
		assert.LessOrEqual(t, s.RelAngleDeg, 180.0)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	dep := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	a := Classify(jfk, lax, dep, 5.2, Config{})
	b := Classify(jfk, lax, dep, 5.2, Config{})
	assert.Equal(t, a, b)
}

func TestStationaryFlightDoesNotPanic(t *testing.T) {
	// Degenerate zero-length flight still classifies cleanly.
	dep := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	side := Classify(jfk, jfk, dep, 0, Config{})
	assert.Contains(t, []Side{SideLeft, SideRight, SideBoth, SideNone}, side)
}
