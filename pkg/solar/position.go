// Package solar computes the position of the sun and its rise/set times
// using closed-form low-precision ephemeris approximations. Accuracy is on
// the order of a few hundredths of a degree in position and a couple of
// minutes in event times, which is plenty for deciding which side of an
// aircraft the sun is on.
package solar

import (
	"math"
	"time"

	"github.com/curbz/sunside/pkg/geo"
)

// Position is the topocentric position of the sun as seen from a ground
// location: compass azimuth (0 = true north, clockwise, east = 90) and
// altitude above the horizon (negative when the sun is below it).
type Position struct {
	AzimuthDeg  float64 `json:"azimuth_deg"`
	AltitudeDeg float64 `json:"altitude_deg"`
}

// julianDay converts t (any zone) to the Julian day number, including the
// fractional day.
func julianDay(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()
	mo := int(m)
	if mo <= 2 {
		y--
		mo += 12
	}
	a := y / 100
	b := 2 - a + a/4
	day := float64(d) +
		float64(t.Hour())/24 +
		float64(t.Minute())/1440 +
		float64(t.Second())/86400 +
		float64(t.Nanosecond())/8.64e13
	return float64(int(365.25*float64(y+4716))) +
		float64(int(30.6001*float64(mo+1))) +
		day + float64(b) - 1524.5
}

// sunEcliptic returns the sun's ecliptic longitude (radians), the obliquity
// of the ecliptic (radians) and the day count n since J2000.0 for time t.
func sunEcliptic(t time.Time) (lambda, epsilon, n float64) {
	n = julianDay(t) - 2451545.0

	// Mean longitude and mean anomaly of the sun, degrees.
	L := math.Mod(280.460+0.9856474*n, 360)
	g := geo.DegToRad(math.Mod(357.528+0.9856003*n, 360))

	// Ecliptic longitude.
	lambda = geo.DegToRad(L + 1.915*math.Sin(g) + 0.020*math.Sin(2*g))

	// Obliquity of the ecliptic.
	epsilon = geo.DegToRad(23.439 - 0.0000004*n)
	return lambda, epsilon, n
}

// PositionAt returns the sun's topocentric azimuth/altitude at instant t
// for the observer at loc. Azimuth is always in [0,360).
func PositionAt(t time.Time, loc geo.Coordinate) Position {
	lambda, epsilon, n := sunEcliptic(t)

	// Equatorial coordinates.
	alpha := math.Atan2(math.Cos(epsilon)*math.Sin(lambda), math.Cos(lambda))
	delta := math.Asin(math.Sin(epsilon) * math.Sin(lambda))

	// Hour angle from local sidereal time.
	gmst := math.Mod(280.460+360.9856474*n, 360)
	lst := geo.DegToRad(gmst + loc.Lon)
	h := lst - alpha

	latRad := geo.DegToRad(loc.Lat)

	sinAlt := math.Sin(latRad)*math.Sin(delta) +
		math.Cos(latRad)*math.Cos(delta)*math.Cos(h)
	sinAlt = clamp1(sinAlt)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(delta) - math.Sin(latRad)*sinAlt) /
		(math.Cos(latRad) * math.Cos(alt))
	az := geo.RadToDeg(math.Acos(clamp1(cosAz)))
	if math.Sin(h) > 0 {
		az = 360 - az
	}

	return Position{
		AzimuthDeg:  geo.Normalize360(az),
		AltitudeDeg: geo.RadToDeg(alt),
	}
}

// PositionAtFraction returns the sun position at flight progress fraction
// t01 in [0,1] of a flight departing at departure and lasting durationHours,
// for the observer at loc.
func PositionAtFraction(departure time.Time, durationHours, t01 float64, loc geo.Coordinate) Position {
	offset := time.Duration(t01 * durationHours * float64(time.Hour))
	return PositionAt(departure.Add(offset), loc)
}

// SubsolarPoint returns the coordinate at which the sun is at the zenith
// at instant t. The latitude is the solar declination; the longitude
// follows from the equation of time.
func SubsolarPoint(t time.Time) geo.Coordinate {
	lambda, epsilon, n := sunEcliptic(t)

	delta := math.Asin(math.Sin(epsilon) * math.Sin(lambda))
	alpha := math.Atan2(math.Cos(epsilon)*math.Sin(lambda), math.Cos(lambda))

	gmst := math.Mod(280.460+360.9856474*n, 360)

	// The subsolar longitude is where the hour angle is zero.
	lon := geo.Normalize180(geo.RadToDeg(alpha) - gmst)

	return geo.Coordinate{Lat: geo.RadToDeg(delta), Lon: lon}
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
