// Package fov selects the catalogue stars that can appear in a frame.
//
// The selection is a rectangle in (RA, DE) around the boresight, widened in
// RA by 1/cos(de). It over-approximates the circular field of view: stars in
// the rectangle's corners outside the true cap still pass, and projection
// discards them later.
package fov

import (
	"math"

	"star-sensor-sim/internal/attitude"
	"star-sensor-sim/internal/catalog"
	"star-sensor-sim/internal/mathutil"
	"star-sensor-sim/internal/sensor"
)

// polarEpsilon is the |cos(de)| below which the RA window is unbounded.
const polarEpsilon = 1e-12

// Window is the RA/DE search rectangle, in radians.
type Window struct {
	RA     float64 // centre
	HalfRA float64 // R / cos(de)
	DeMin  float64 // lower declination bound
	DeMax  float64 // upper declination bound
	Radius float64 // half-diagonal angular radius R
	FullRA bool    // RA window spans the whole circle
}

// NewWindow computes the search rectangle for a pointing.
func NewWindow(a attitude.Radians, g sensor.Geometry) Window {
	r := g.HalfDiagonal()
	w := Window{
		RA:     a.RA,
		DeMin:  a.De - r,
		DeMax:  a.De + r,
		Radius: r,
	}

	c := math.Cos(a.De)
	if math.Abs(c) <= polarEpsilon {
		w.FullRA = true
		w.HalfRA = math.Inf(1)
		return w
	}
	w.HalfRA = r / math.Abs(c)
	if w.HalfRA >= math.Pi {
		w.FullRA = true
	}
	return w
}

// RAStart and RAEnd bound the RA window; RAStart may be negative or
// RAEnd above 2π when the window straddles RA=0.
func (w Window) RAStart() float64 {
	return w.RA - w.HalfRA
}

func (w Window) RAEnd() float64 {
	return w.RA + w.HalfRA
}

// ContainsRA reports whether ra (radians) is inside the RA window.
func (w Window) ContainsRA(ra float64) bool {
	if w.FullRA {
		return true
	}
	return math.Abs(mathutil.WrapPi(ra-w.RA)) <= w.HalfRA
}

// ContainsDe reports whether de (radians) is inside the DE window.
func (w Window) ContainsDe(de float64) bool {
	return w.DeMin <= de && de <= w.DeMax
}

// Filter returns the rows of t inside w: the RA-window rows inner-joined on
// ID with the DE-window rows.
func Filter(t catalog.Table, w Window) catalog.Table {
	inRA := t.Where(func(e catalog.Entry) bool {
		return w.ContainsRA(mathutil.Deg2Rad(e.RA))
	})
	inDe := t.Where(func(e catalog.Entry) bool {
		return w.ContainsDe(mathutil.Deg2Rad(e.De))
	})
	return inRA.Join(inDe)
}
