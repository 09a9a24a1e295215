package projection

import (
	"math"

	"star-sensor-sim/internal/catalog"
	"star-sensor-sim/internal/mathutil"
	"star-sensor-sim/internal/sensor"
)

// Star is a catalogue star that landed on the detector.
type Star struct {
	ID  string
	Mag float64

	// Offsets from the frame centre in pixels, y up.
	DX, DY int

	// Raster position, origin top-left, y down.
	X, Y int
}

// Focal returns the focal-plane coordinates (metres) of the direction
// v already rotated into the sensor frame. ok is false when v does not
// point into the lens or is not finite.
func Focal(v mathutil.Vec3, f float64) (x, y float64, ok bool) {
	// The boresight maps to -z. NaN fails this test too.
	if !(v[2] < 0) {
		return 0, 0, false
	}
	x, y = f*v[0]/v[2], f*v[1]/v[2]
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, false
	}
	return x, y, true
}

// Project rotates each star of t into the sensor frame with the projection
// matrix p, projects it through a pinhole of the geometry's focal length and
// scales to integer pixel offsets. Stars that fall outside the frame are
// dropped; every returned Star carries its own magnitude.
func Project(t catalog.Table, p mathutil.Mat3, g sensor.Geometry) []Star {
	sx, sy := g.PixelScale()
	halfW := float64(g.Width) / 2
	halfH := float64(g.Height) / 2
	cx, cy := g.Center()

	var out []Star
	for i := 0; i < t.Len(); i++ {
		e := t.Row(i)
		v := p.MulVec3(mathutil.FromSpherical(mathutil.Deg2Rad(e.RA), mathutil.Deg2Rad(e.De)))

		x, y, ok := Focal(v, g.FocalLength)
		if !ok {
			continue
		}

		dx := math.RoundToEven(x * sx)
		dy := math.RoundToEven(y * sy)
		if math.Abs(dx) > halfW || math.Abs(dy) > halfH {
			continue
		}

		out = append(out, Star{
			ID:  e.ID,
			Mag: e.Mag,
			DX:  int(dx),
			DY:  int(dy),
			X:   cx + int(dx),
			Y:   cy - int(dy),
		})
	}
	return out
}

// Magnitudes returns the magnitude of each star, index-aligned with stars.
func Magnitudes(stars []Star) []float64 {
	out := make([]float64, len(stars))
	for i, s := range stars {
		out[i] = s.Mag
	}
	return out
}
