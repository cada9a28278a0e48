package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jfk = Coordinate{Lat: 40.6413, Lon: -73.7781}
	lax = Coordinate{Lat: 33.9425, Lon: -118.4081}
	lhr = Coordinate{Lat: 51.4700, Lon: -0.4543}
	syd = Coordinate{Lat: -33.9399, Lon: 151.1753}
)

func TestDistanceSymmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b Coordinate
	}{
		{"jfk-lax", jfk, lax},
		{"lhr-syd", lhr, syd},
		{"equator-dateline", Coordinate{Lat: 0, Lon: 179}, Coordinate{Lat: 0, Lon: -179}},
		{"pole", Coordinate{Lat: 89, Lon: 0}, Coordinate{Lat: 80, Lon: 120}},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			assert.InDelta(t, DistanceKm(p.a, p.b), DistanceKm(p.b, p.a), 1e-9)
		})
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// JFK-LAX is about 3970-3990 km on a spherical earth.
	assert.InDelta(t, 3974, DistanceKm(jfk, lax), 60)

	// Two degrees of arc along the equator across the dateline.
	d := DistanceKm(Coordinate{Lat: 0, Lon: 179}, Coordinate{Lat: 0, Lon: -179})
	assert.InDelta(t, 2*math.Pi*EarthRadiusKm/180, d, 1)

	assert.Zero(t, DistanceKm(jfk, jfk))
}

func TestInitialBearing(t *testing.T) {
	// JFK to LAX heads west, slightly north of due west initially.
	b := InitialBearing(jfk, lax)
	assert.InDelta(t, 274, b, 5)

	// Due north and due south along a meridian.
	assert.InDelta(t, 0, InitialBearing(Coordinate{Lat: 10, Lon: 20}, Coordinate{Lat: 30, Lon: 20}), 1e-6)
	assert.InDelta(t, 180, InitialBearing(Coordinate{Lat: 30, Lon: 20}, Coordinate{Lat: 10, Lon: 20}), 1e-6)

	// Always normalized.
	for _, pair := range [][2]Coordinate{{jfk, lax}, {lax, jfk}, {lhr, syd}, {syd, lhr}} {
		b := InitialBearing(pair[0], pair[1])
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	}
}

func TestGeneratePathEndpoints(t *testing.T) {
	for _, n := range []int{2, 3, 20, 101} {
		path, err := GeneratePath(jfk, lax, n)
		require.NoError(t, err)
		require.Len(t, path, n)
		assert.InDelta(t, jfk.Lat, path[0].Lat, 1e-9)
		assert.InDelta(t, jfk.Lon, path[0].Lon, 1e-9)
		assert.InDelta(t, lax.Lat, path[n-1].Lat, 1e-9)
		assert.InDelta(t, lax.Lon, path[n-1].Lon, 1e-9)
	}
}

func TestGeneratePathInvalid(t *testing.T) {
	_, err := GeneratePath(jfk, lax, 1)
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = GeneratePath(Coordinate{Lat: 95, Lon: 0}, lax, 10)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = GeneratePath(jfk, Coordinate{Lat: math.NaN(), Lon: 0}, 10)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestInterpolateAntimeridian(t *testing.T) {
	// The midpoint between 179E and 179W on the equator is on the
	// dateline, not at longitude 0.
	mid := Interpolate(Coordinate{Lat: 0, Lon: 179}, Coordinate{Lat: 0, Lon: -179}, 0.5)
	assert.InDelta(t, 0, mid.Lat, 1e-6)
	assert.InDelta(t, 180, math.Abs(mid.Lon), 1e-6)
}

func TestInterpolateMonotonicProgress(t *testing.T) {
	// Each step along the path covers the same arc, and no step backtracks.
	path, err := GeneratePath(lhr, syd, 20)
	require.NoError(t, err)

	total := DistanceKm(lhr, syd)
	step := total / 19
	for i := 0; i < len(path)-1; i++ {
		assert.InDelta(t, step, DistanceKm(path[i], path[i+1]), step*0.01)
	}
}

func TestInterpolateDegenerate(t *testing.T) {
	got := Interpolate(jfk, jfk, 0.5)
	assert.Equal(t, jfk, got)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want360, want180 float64
	}{
		{0, 0, 0},
		{360, 0, 0},
		{370, 10, 10},
		{-10, 350, -10},
		{190, 190, -170},
		{-190, 170, 170},
		{180, 180, 180},
		{-180, 180, 180},
		{540, 180, 180},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want360, Normalize360(c.in), 1e-9, "Normalize360(%v)", c.in)
		assert.InDelta(t, c.want180, Normalize180(c.in), 1e-9, "Normalize180(%v)", c.in)
	}
}

func TestFlightDurationHours(t *testing.T) {
	assert.InDelta(t, 5.0, FlightDurationHours(4000, 800), 1e-9)
	// Non-positive speed falls back to the default cruise speed.
	assert.InDelta(t, 4000/DefaultCruiseSpeedKmh, FlightDurationHours(4000, 0), 1e-9)
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, jfk.Valid())
	assert.True(t, Coordinate{Lat: -90, Lon: 180}.Valid())
	assert.False(t, Coordinate{Lat: 90.0001, Lon: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lon: -180.5}.Valid())
	assert.False(t, Coordinate{Lat: math.Inf(1), Lon: 0}.Valid())
}
