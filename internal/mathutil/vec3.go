package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// FromSpherical returns the unit direction vector for right ascension ra
// and declination de, both in radians.
func FromSpherical(ra, de float64) Vec3 {
	sr, cr := math.Sincos(ra)
	sd, cd := math.Sincos(de)
	return Vec3{cr * cd, sr * cd, sd}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
