package geo

import "math"

// vec3 is a unit vector on the sphere, used internally for
// spherical interpolation.
type vec3 struct {
	x, y, z float64
}

func (v vec3) dot(o vec3) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v vec3) add(o vec3) vec3 {
	return vec3{x: v.x + o.x, y: v.y + o.y, z: v.z + o.z}
}

func (v vec3) mul(k float64) vec3 {
	return vec3{x: v.x * k, y: v.y * k, z: v.z * k}
}

func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func latLonToVec(c Coordinate) vec3 {
	lat := DegToRad(c.Lat)
	lon := DegToRad(c.Lon)
	clat := math.Cos(lat)
	return vec3{
		x: clat * math.Cos(lon),
		y: clat * math.Sin(lon),
		z: math.Sin(lat),
	}
}

func vecToLatLon(v vec3) Coordinate {
	return Coordinate{
		Lat: RadToDeg(math.Asin(clamp(v.z, -1, 1))),
		Lon: RadToDeg(math.Atan2(v.y, v.x)),
	}
}

// slerp interpolates between two unit vectors along the shorter arc.
// Degenerate inputs (coincident points) return a.
func slerp(a, b vec3, t float64) vec3 {
	dot := clamp(a.dot(b), -1, 1)
	omega := math.Acos(dot)
	if omega == 0 {
		return a
	}
	sinOmega := math.Sin(omega)
	if sinOmega == 0 {
		return a
	}
	f1 := math.Sin((1-t)*omega) / sinOmega
	f2 := math.Sin(t*omega) / sinOmega
	return a.mul(f1).add(b.mul(f2))
}
