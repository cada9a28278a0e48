package airports

import "github.com/curbz/sunside/pkg/geo"

// builtinAirports is the table of major airports shipped with the binary,
// keyed by IATA code. Operators can extend or override it with a JSON data
// file (see Resolver.LoadFile).
var builtinAirports = map[string]Airport{
	// --- North America ---
	"JFK": {Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Coord: geo.Coordinate{Lat: 40.6413, Lon: -73.7781}},
	"EWR": {Code: "EWR", Name: "Newark Liberty International Airport", City: "Newark", Coord: geo.Coordinate{Lat: 40.6895, Lon: -74.1745}},
	"LAX": {Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Coord: geo.Coordinate{Lat: 33.9425, Lon: -118.4081}},
	"SFO": {Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Coord: geo.Coordinate{Lat: 37.6213, Lon: -122.3790}},
	"SEA": {Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Coord: geo.Coordinate{Lat: 47.4502, Lon: -122.3088}},
	"ORD": {Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Coord: geo.Coordinate{Lat: 41.9742, Lon: -87.9073}},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Coord: geo.Coordinate{Lat: 32.8998, Lon: -97.0403}},
	"MIA": {Code: "MIA", Name: "Miami International Airport", City: "Miami", Coord: geo.Coordinate{Lat: 25.7959, Lon: -80.2870}},
	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Coord: geo.Coordinate{Lat: 33.6404, Lon: -84.4277}},
	"DEN": {Code: "DEN", Name: "Denver International Airport", City: "Denver", Coord: geo.Coordinate{Lat: 39.8561, Lon: -104.6737}},
	"BOS": {Code: "BOS", Name: "Boston Logan International Airport", City: "Boston", Coord: geo.Coordinate{Lat: 42.3656, Lon: -71.0096}},
	"YYZ": {Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Coord: geo.Coordinate{Lat: 43.6777, Lon: -79.6248}},
	"YVR": {Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Coord: geo.Coordinate{Lat: 49.1967, Lon: -123.1815}},
	"MEX": {Code: "MEX", Name: "Mexico City International Airport", City: "Mexico City", Coord: geo.Coordinate{Lat: 19.4363, Lon: -99.0721}},
	"ANC": {Code: "ANC", Name: "Ted Stevens Anchorage International Airport", City: "Anchorage", Coord: geo.Coordinate{Lat: 61.1743, Lon: -149.9962}},
	"HNL": {Code: "HNL", Name: "Daniel K. Inouye International Airport", City: "Honolulu", Coord: geo.Coordinate{Lat: 21.3187, Lon: -157.9224}},

	// --- Europe ---
	"LHR": {Code: "LHR", Name: "London Heathrow Airport", City: "London", Coord: geo.Coordinate{Lat: 51.4700, Lon: -0.4543}},
	"CDG": {Code: "CDG", Name: "Paris Charles de Gaulle Airport", City: "Paris", Coord: geo.Coordinate{Lat: 49.0097, Lon: 2.5479}},
	"AMS": {Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Coord: geo.Coordinate{Lat: 52.3105, Lon: 4.7683}},
	"FRA": {Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Coord: geo.Coordinate{Lat: 50.0379, Lon: 8.5622}},
	"MAD": {Code: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Coord: geo.Coordinate{Lat: 40.4983, Lon: -3.5676}},
	"FCO": {Code: "FCO", Name: "Rome Fiumicino Airport", City: "Rome", Coord: geo.Coordinate{Lat: 41.8003, Lon: 12.2389}},
	"ZRH": {Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Coord: geo.Coordinate{Lat: 47.4647, Lon: 8.5492}},
	"IST": {Code: "IST", Name: "Istanbul Airport", City: "Istanbul", Coord: geo.Coordinate{Lat: 41.2753, Lon: 28.7519}},
	"KEF": {Code: "KEF", Name: "Keflavik International Airport", City: "Reykjavik", Coord: geo.Coordinate{Lat: 63.9850, Lon: -22.6056}},
	"LYR": {Code: "LYR", Name: "Svalbard Airport", City: "Longyearbyen", Coord: geo.Coordinate{Lat: 78.2461, Lon: 15.4656}},

	// --- Asia / Pacific ---
	"NRT": {Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Coord: geo.Coordinate{Lat: 35.7720, Lon: 140.3929}},
	"HND": {Code: "HND", Name: "Tokyo Haneda Airport", City: "Tokyo", Coord: geo.Coordinate{Lat: 35.5494, Lon: 139.7798}},
	"HKG": {Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Coord: geo.Coordinate{Lat: 22.3080, Lon: 113.9185}},
	"SIN": {Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Coord: geo.Coordinate{Lat: 1.3644, Lon: 103.9915}},
	"SYD": {Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Coord: geo.Coordinate{Lat: -33.9399, Lon: 151.1753}},
	"AKL": {Code: "AKL", Name: "Auckland Airport", City: "Auckland", Coord: geo.Coordinate{Lat: -37.0082, Lon: 174.7850}},
	"NAN": {Code: "NAN", Name: "Nadi International Airport", City: "Nadi", Coord: geo.Coordinate{Lat: -17.7554, Lon: 177.4434}},
	"DEL": {Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Coord: geo.Coordinate{Lat: 28.5562, Lon: 77.1000}},
	"DXB": {Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Coord: geo.Coordinate{Lat: 25.2532, Lon: 55.3657}},

	// --- South America / Africa ---
	"GRU": {Code: "GRU", Name: "Sao Paulo-Guarulhos International Airport", City: "Sao Paulo", Coord: geo.Coordinate{Lat: -23.4356, Lon: -46.4731}},
	"EZE": {Code: "EZE", Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Coord: geo.Coordinate{Lat: -34.8222, Lon: -58.5358}},
	"JNB": {Code: "JNB", Name: "O.R. Tambo International Airport", City: "Johannesburg", Coord: geo.Coordinate{Lat: -26.1367, Lon: 28.2411}},
	"CPT": {Code: "CPT", Name: "Cape Town International Airport", City: "Cape Town", Coord: geo.Coordinate{Lat: -33.9715, Lon: 18.6021}},
}
