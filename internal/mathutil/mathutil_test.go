package mathutil

import (
	"math"
	"testing"
)

func TestWrapPi(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{Deg2Rad(359) - Deg2Rad(1), Deg2Rad(-2)},
	}
	for _, tt := range tests {
		if got := WrapPi(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapPi(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMat3Round(t *testing.T) {
	m := Mat3{0.123456, -0.123454, 1, 0.000004, 0.0000251, -0.0000049, 2.5, -0.99999951, 0}
	got := m.Round(5)
	want := Mat3{0.12346, -0.12345, 1, 0, 0.00003, 0, 2.5, -1, 0}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotationsAreOrthonormal(t *testing.T) {
	m := Mat3Mul(Mat3Mul(RotZ(0.3), RotX(-1.1)), RotZ(2.2))
	if d := m.Det(); math.Abs(d-1) > 1e-12 {
		t.Errorf("det = %v, want 1", d)
	}
	p := Mat3Mul(m, m.Transpose())
	id := Mat3Identity()
	for i := range p {
		if math.Abs(p[i]-id[i]) > 1e-12 {
			t.Fatalf("M·Mᵀ[%d] = %v, want %v", i, p[i], id[i])
		}
	}
}

func TestFromSphericalIsUnit(t *testing.T) {
	for _, c := range [][2]float64{{0, 0}, {10, 20}, {200, -75}, {359.9, 89.9}} {
		v := FromSpherical(Deg2Rad(c[0]), Deg2Rad(c[1]))
		if math.Abs(v.Len()-1) > 1e-12 {
			t.Errorf("|FromSpherical(%v, %v)| = %v, want 1", c[0], c[1], v.Len())
		}
	}
	v := FromSpherical(0, math.Pi/2)
	if math.Abs(v[2]-1) > 1e-12 {
		t.Errorf("north pole z = %v, want 1", v[2])
	}
}
