package sensor

import (
	"errors"
	"fmt"
	"math"

	"star-sensor-sim/internal/mathutil"
)

// Geometry describes the optics and detector of a star sensor.
// It is a value type; callers pass it by copy into each synthesis call.
type Geometry struct {
	PixelPitch  float64 `json:"pixel_pitch" yaml:"pixel_pitch"`   // metres per pixel
	FocalLength float64 `json:"focal_length" yaml:"focal_length"` // metres
	Width       int     `json:"width" yaml:"width"`               // horizontal pixel count
	Height      int     `json:"height" yaml:"height"`             // vertical pixel count
}

// Default sensor: 1.12 µm pitch, 3.04 mm lens, 3280×2464 detector.
const (
	DefaultPixelPitch  = 1.12e-6
	DefaultFocalLength = 0.00304
	DefaultWidth       = 3280
	DefaultHeight      = 2464
)

var ErrInvalidGeometry = errors.New("sensor: invalid geometry")

// Default returns the reference sensor geometry.
func Default() Geometry {
	return Geometry{
		PixelPitch:  DefaultPixelPitch,
		FocalLength: DefaultFocalLength,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// Validate rejects non-positive dimensions.
func (g Geometry) Validate() error {
	switch {
	case g.PixelPitch <= 0:
		return fmt.Errorf("%w: pixel pitch %g", ErrInvalidGeometry, g.PixelPitch)
	case g.FocalLength <= 0:
		return fmt.Errorf("%w: focal length %g", ErrInvalidGeometry, g.FocalLength)
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}
	return nil
}

// FOV returns the horizontal and vertical field of view in degrees.
func (g Geometry) FOV() (x, y float64) {
	x = mathutil.Rad2Deg(2 * math.Atan(g.PixelPitch*float64(g.Width)/2/g.FocalLength))
	y = mathutil.Rad2Deg(2 * math.Atan(g.PixelPitch*float64(g.Height)/2/g.FocalLength))
	return x, y
}

// HalfDiagonal returns the angular radius (radians) of the circle
// circumscribing the field of view.
func (g Geometry) HalfDiagonal() float64 {
	fx, fy := g.FOV()
	rx, ry := mathutil.Deg2Rad(fx), mathutil.Deg2Rad(fy)
	return math.Sqrt(rx*rx+ry*ry) / 2
}

// SensingArea returns the physical extent of the focal plane in metres,
// derived from the field of view and focal length.
func (g Geometry) SensingArea() (x, y float64) {
	fx, fy := g.FOV()
	x = 2 * math.Tan(mathutil.Deg2Rad(fx)/2) * g.FocalLength
	y = 2 * math.Tan(mathutil.Deg2Rad(fy)/2) * g.FocalLength
	return x, y
}

// PixelScale returns pixels per metre on the focal plane for each axis.
func (g Geometry) PixelScale() (x, y float64) {
	ax, ay := g.SensingArea()
	return float64(g.Width) / ax, float64(g.Height) / ay
}

// Center returns the raster coordinate of the boresight.
func (g Geometry) Center() (x, y int) {
	return g.Width / 2, g.Height / 2
}
