package projection

import (
	"math"
	"testing"

	"star-sensor-sim/internal/attitude"
	"star-sensor-sim/internal/catalog"
	"star-sensor-sim/internal/mathutil"
	"star-sensor-sim/internal/sensor"
)

func projector(a attitude.Attitude) mathutil.Mat3 {
	return attitude.ProjectionMatrix(attitude.Matrix(a.Radians(), attitude.MethodComposed))
}

func TestProject_BoresightAtCenter(t *testing.T) {
	g := sensor.Default()
	for _, roll := range []float64{0, 15, 90, 180, 271.5} {
		a := attitude.Attitude{RA: 10, De: 20, Roll: roll}
		tbl := catalog.NewTable([]catalog.Entry{{ID: "b", RA: a.RA, De: a.De, Mag: 3}})

		got := Project(tbl, projector(a), g)
		if len(got) != 1 {
			t.Fatalf("roll=%v: %d stars projected, want 1", roll, len(got))
		}
		if got[0].X != 1640 || got[0].Y != 1232 {
			t.Errorf("roll=%v: boresight at (%d, %d), want (1640, 1232)", roll, got[0].X, got[0].Y)
		}
	}
}

func TestProject_PixelOffset(t *testing.T) {
	g := sensor.Default()
	a := attitude.Attitude{RA: 0, De: 0}
	tbl := catalog.NewTable([]catalog.Entry{{ID: "s", RA: 5, De: 0, Mag: 1}})

	got := Project(tbl, projector(a), g)
	if len(got) != 1 {
		t.Fatalf("%d stars projected, want 1", len(got))
	}

	// tan(5°)·f/pitch ≈ 237.47 px along the sensor x axis.
	s := got[0]
	if s.DX != 237 || s.DY != 0 {
		t.Errorf("offset = (%d, %d), want (237, 0)", s.DX, s.DY)
	}
	if s.X != 1640+237 || s.Y != 1232 {
		t.Errorf("raster = (%d, %d), want (%d, 1232)", s.X, s.Y, 1640+237)
	}
}

func TestProject_DiscardsOutOfFrame(t *testing.T) {
	g := sensor.Default()
	a := attitude.Attitude{RA: 100, De: 0}
	tbl := catalog.NewTable([]catalog.Entry{
		{ID: "in", RA: 101, De: 1, Mag: 1},
		{ID: "wide", RA: 135, De: 0, Mag: 2},  // 35° off axis, beyond FOVx/2
		{ID: "tall", RA: 100, De: 27, Mag: 3}, // beyond FOVy/2
		{ID: "behind", RA: 280, De: 0, Mag: 4},
		{ID: "in2", RA: 99, De: -2, Mag: 5},
	})

	got := Project(tbl, projector(a), g)
	mags := Magnitudes(got)
	if len(got) != 2 || len(mags) != len(got) {
		t.Fatalf("projected %d stars / %d magnitudes, want 2 / 2", len(got), len(mags))
	}
	if got[0].ID != "in" || got[1].ID != "in2" {
		t.Errorf("kept %s, %s; want in, in2", got[0].ID, got[1].ID)
	}
	if mags[0] != 1 || mags[1] != 5 {
		t.Errorf("magnitudes = %v, want [1 5]", mags)
	}
	for _, s := range got {
		if s.DX < -g.Width/2 || s.DX > g.Width/2 || s.DY < -g.Height/2 || s.DY > g.Height/2 {
			t.Errorf("%s offset (%d, %d) outside frame", s.ID, s.DX, s.DY)
		}
	}
}

func TestFocal_RejectsBackwards(t *testing.T) {
	if _, _, ok := Focal(mathutil.Vec3{0, 0, 1}, 0.003); ok {
		t.Error("direction away from the lens accepted")
	}
	x, y, ok := Focal(mathutil.Vec3{0.1, -0.2, -1}, 0.003)
	if !ok || math.Abs(x-(-0.0003)) > 1e-15 || math.Abs(y-0.0006) > 1e-15 {
		t.Errorf("Focal = (%v, %v, %v)", x, y, ok)
	}
	nan := math.NaN()
	if _, _, ok := Focal(mathutil.Vec3{nan, 0, -1}, 0.003); ok {
		t.Error("NaN direction accepted")
	}
	if _, _, ok := Focal(mathutil.Vec3{0, 0, nan}, 0.003); ok {
		t.Error("NaN depth accepted")
	}
}
