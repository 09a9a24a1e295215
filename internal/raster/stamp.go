package raster

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how a star is stamped onto the raster.
type Mode int

const (
	// ModeFlatDisk draws a filled disk of uniform level.
	ModeFlatDisk Mode = iota
	// ModeGaussian draws a sampled 2D Gaussian over a square ROI.
	ModeGaussian
)

func (m Mode) String() string {
	switch m {
	case ModeFlatDisk:
		return "disk"
	case ModeGaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ParseMode accepts "disk" (or "flat") and "gaussian".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "disk", "flat":
		return ModeFlatDisk, nil
	case "gaussian", "gauss":
		return ModeGaussian, nil
	}
	return 0, fmt.Errorf("raster: unknown render mode %q", s)
}

// Flat-disk appearance: magnitude is mapped to a brightness in [0, DiskSpan]
// where 0 is the faintest drawable star (magnitude DiskFaintLimit).
const (
	DiskFaintLimit = 7.0
	DiskSpan       = 9.0
	DiskMinRadius  = 2
	DiskRadiusGain = 5
	DiskMinLevel   = 100
	DiskLevelGain  = 155
)

// Gaussian stamp constants.
const (
	GaussPeakGain = 2000.0
	GaussSigma    = 5.0
	GaussROI      = 5
)

// DiskAppearance returns the radius and intensity level of a flat-disk star.
// Both are non-increasing in magnitude.
func DiskAppearance(mag float64) (radius int, level float64) {
	b := math.Min(math.Max(DiskFaintLimit-mag, 0), DiskSpan)
	radius = int(math.RoundToEven(b/DiskSpan*DiskRadiusGain + DiskMinRadius))
	level = math.RoundToEven(b/DiskSpan*DiskLevelGain + DiskMinLevel)
	return radius, level
}

// DrawDisk overwrites a filled disk centred on (x, y).
func DrawDisk(r *Raster, x, y int, mag float64) {
	radius, level := DiskAppearance(mag)
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				r.Set(x+dx, y+dy, level)
			}
		}
	}
}

// GaussianPeak returns the amplitude H for a magnitude.
func GaussianPeak(mag float64) float64 {
	return GaussPeakGain * math.Exp(-mag+1)
}

// DrawGaussian overwrites the (2·GaussROI+1)² square around (x, y) with a
// sampled Gaussian. Overlapping stars are not blended: the last write wins.
func DrawGaussian(r *Raster, x, y int, mag float64) {
	h := GaussianPeak(mag)
	norm := h / (2 * math.Pi * GaussSigma * GaussSigma)
	for v := y - GaussROI; v <= y+GaussROI; v++ {
		for u := x - GaussROI; u <= x+GaussROI; u++ {
			d := float64((u-x)*(u-x) + (v-y)*(v-y))
			r.Set(u, v, math.RoundToEven(norm*math.Exp(-d/(2*GaussSigma*GaussSigma))))
		}
	}
}

// Draw stamps a star with the given mode.
func Draw(r *Raster, m Mode, x, y int, mag float64) {
	if m == ModeGaussian {
		DrawGaussian(r, x, y, mag)
		return
	}
	DrawDisk(r, x, y, mag)
}
