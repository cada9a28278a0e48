package solar

import (
	"math"
	"time"

	"github.com/curbz/sunside/pkg/geo"
)

// StandardZenith is the zenith angle in degrees used for sunrise/sunset:
// 90°50', which accounts for atmospheric refraction and the sun's
// apparent radius.
const StandardZenith = 90.833

// SunTimes holds the sunrise and sunset instants (UTC) for one location
// and calendar date. A nil field means the event does not occur that day
// (polar day or polar night), which is a valid outcome rather than an error.
type SunTimes struct {
	Sunrise *time.Time `json:"sunrise"`
	Sunset  *time.Time `json:"sunset"`
}

// RiseSet computes sunrise and sunset at loc for the calendar date of
// `date` (its UTC year/month/day). Returned instants are in UTC and are
// built from the input date's calendar fields combined with the computed
// UTC time of day.
func RiseSet(loc geo.Coordinate, date time.Time) SunTimes {
	return SunTimes{
		Sunrise: eventUTC(loc, date, true, StandardZenith),
		Sunset:  eventUTC(loc, date, false, StandardZenith),
	}
}

// eventUTC implements the simplified solar calculation for a single rise or
// set event: mean anomaly, true longitude, right ascension with quadrant
// correction, declination, then the hour angle at the given zenith. Returns
// nil when the hour-angle cosine falls outside [-1,1] (midnight sun or
// polar night at that latitude and date).
func eventUTC(loc geo.Coordinate, date time.Time, rising bool, zenith float64) *time.Time {
	d := date.UTC()
	dayOfYear := float64(d.YearDay()) // Jan 1 = day 1

	lngHour := loc.Lon / 15

	var t float64
	if rising {
		t = dayOfYear + (6-lngHour)/24
	} else {
		t = dayOfYear + (18-lngHour)/24
	}

	// Sun's mean anomaly.
	m := 0.9856*t - 3.289

	// Sun's true longitude.
	l := m + 1.916*math.Sin(geo.DegToRad(m)) + 0.020*math.Sin(geo.DegToRad(2*m)) + 282.634
	l = geo.Normalize360(l)

	// Sun's right ascension, adjusted into the same quadrant as L.
	ra := geo.Normalize360(geo.RadToDeg(math.Atan(0.91764 * math.Tan(geo.DegToRad(l)))))
	lQuadrant := math.Floor(l/90) * 90
	raQuadrant := math.Floor(ra/90) * 90
	ra += lQuadrant - raQuadrant
	ra /= 15

	// Sun's declination.
	sinDec := 0.39782 * math.Sin(geo.DegToRad(l))
	cosDec := math.Cos(math.Asin(sinDec))

	// Local hour angle at the requested zenith.
	cosH := (math.Cos(geo.DegToRad(zenith)) - sinDec*math.Sin(geo.DegToRad(loc.Lat))) /
		(cosDec * math.Cos(geo.DegToRad(loc.Lat)))
	if cosH > 1 || cosH < -1 {
		// Sun never reaches the zenith angle on this date.
		return nil
	}

	var h float64
	if rising {
		h = 360 - geo.RadToDeg(math.Acos(cosH))
	} else {
		h = geo.RadToDeg(math.Acos(cosH))
	}
	h /= 15

	// Local mean time of the event, then to UTC hours.
	localT := h + ra - 0.06571*t - 6.622
	ut := math.Mod(localT-lngHour, 24)
	if ut < 0 {
		ut += 24
	}

	hours := int(ut)
	minutes := int((ut - float64(hours)) * 60)
	seconds := int((((ut - float64(hours)) * 60) - float64(minutes)) * 60)

	at := time.Date(d.Year(), d.Month(), d.Day(), hours, minutes, seconds, 0, time.UTC)
	return &at
}
