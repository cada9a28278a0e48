package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm is the mean radius of Earth in kilometers (spherical model).
const EarthRadiusKm = 6371.0

// DefaultCruiseSpeedKmh is the cruise speed assumed for airliner flight
// duration estimates when the caller does not supply one.
const DefaultCruiseSpeedKmh = 800.0

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrTooFewPoints      = errors.New("path requires at least 2 points")
)

// Coordinate is a latitude/longitude pair in decimal degrees.
// Latitude is positive north, longitude positive east.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Valid reports whether the coordinate is finite and within
// [-90,90] latitude and [-180,180] longitude.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) ||
		math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Normalize360 maps an angle in degrees to [0,360).
func Normalize360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Normalize180 maps an angle in degrees to (-180,180].
// Used for signed angular differences, e.g. sun azimuth relative to heading.
func Normalize180(deg float64) float64 {
	d := math.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	d -= 180
	if d == -180 {
		return 180
	}
	return d
}

// DistanceKm returns the haversine great-circle distance between a and b
// in kilometers on a sphere of radius EarthRadiusKm.
func DistanceKm(a, b Coordinate) float64 {
	r1, r2 := DegToRad(a.Lat), DegToRad(b.Lat)

	dLat := DegToRad(b.Lat - a.Lat)
	dLon := DegToRad(b.Lon - a.Lon)

	// --- handle dateline crossing ---
	for dLon > math.Pi {
		dLon -= 2 * math.Pi
	}
	for dLon < -math.Pi {
		dLon += 2 * math.Pi
	}

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(r1)*math.Cos(r2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// InitialBearing returns the forward azimuth from a toward b in degrees,
// normalized to [0,360). The result is numerically arbitrary when a and b
// coincide; callers that care must guard that case themselves.
func InitialBearing(a, b Coordinate) float64 {
	p1 := DegToRad(a.Lat)
	p2 := DegToRad(b.Lat)
	dLon := DegToRad(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(p2)
	x := math.Cos(p1)*math.Sin(p2) - math.Sin(p1)*math.Cos(p2)*math.Cos(dLon)

	return Normalize360(RadToDeg(math.Atan2(y, x)))
}

// Interpolate returns the point at fraction t in [0,1] along the great
// circle from a to b. Interpolation is spherical (slerp on unit vectors),
// so the antimeridian and polar routes are handled correctly.
func Interpolate(a, b Coordinate, t float64) Coordinate {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	va := latLonToVec(a)
	vb := latLonToVec(b)
	return vecToLatLon(slerp(va, vb, t))
}

// GeneratePath samples the great circle from a to b at numPoints evenly
// spaced fractions, inclusive of both endpoints.
func GeneratePath(a, b Coordinate, numPoints int) ([]Coordinate, error) {
	if !a.Valid() || !b.Valid() {
		return nil, ErrInvalidCoordinate
	}
	if numPoints < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewPoints, numPoints)
	}

	path := make([]Coordinate, numPoints)
	path[0] = a
	path[numPoints-1] = b
	for i := 1; i < numPoints-1; i++ {
		t := float64(i) / float64(numPoints-1)
		path[i] = Interpolate(a, b, t)
	}
	return path, nil
}

// FlightDurationHours estimates flight time for a great-circle distance at
// the given cruise speed. A speed <= 0 falls back to DefaultCruiseSpeedKmh.
func FlightDurationHours(distanceKm, cruiseSpeedKmh float64) float64 {
	if cruiseSpeedKmh <= 0 {
		cruiseSpeedKmh = DefaultCruiseSpeedKmh
	}
	return distanceKm / cruiseSpeedKmh
}
