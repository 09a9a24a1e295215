package attitude

import (
	"fmt"
	"math"
	"strings"

	"star-sensor-sim/internal/mathutil"
)

// Method selects how the rotation matrix is derived.
type Method int

const (
	// MethodComposed multiplies three elementary rotations.
	MethodComposed Method = iota
	// MethodDirect evaluates the nine elements in closed form.
	MethodDirect
)

func (m Method) String() string {
	switch m {
	case MethodComposed:
		return "composed"
	case MethodDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseMethod accepts "composed", "direct", or the legacy "2" / "1".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "composed", "2":
		return MethodComposed, nil
	case "direct", "1":
		return MethodDirect, nil
	}
	return 0, fmt.Errorf("attitude: unknown matrix method %q", s)
}

// ProjectionDecimals is the precision the projection matrix is rounded to.
const ProjectionDecimals = 5

// Matrix builds M, the rotation from the celestial frame to the sensor frame.
// Its third column is the negated boresight direction.
func Matrix(a Radians, m Method) mathutil.Mat3 {
	if m == MethodDirect {
		return directMatrix(a)
	}
	return composedMatrix(a)
}

// ProjectionMatrix returns Mᵀ rounded to ProjectionDecimals places.
func ProjectionMatrix(m mathutil.Mat3) mathutil.Mat3 {
	return m.Transpose().Round(ProjectionDecimals)
}

// composedMatrix: Rz(ra − π/2) · Rx(de + π/2) · Rz(roll)
func composedMatrix(a Radians) mathutil.Mat3 {
	m1 := mathutil.RotZ(a.RA - math.Pi/2)
	m2 := mathutil.RotX(a.De + math.Pi/2)
	m3 := mathutil.RotZ(a.Roll)
	return mathutil.Mat3Mul(mathutil.Mat3Mul(m1, m2), m3)
}

func directMatrix(a Radians) mathutil.Mat3 {
	sra, cra := math.Sincos(a.RA)
	sde, cde := math.Sincos(a.De)
	sro, cro := math.Sincos(a.Roll)

	return mathutil.Mat3{
		sra*cro - cra*sde*sro, -sra*sro - cra*sde*cro, -cra * cde,
		-cra*cro - sra*sde*sro, cra*sro - sra*sde*cro, -sra * cde,
		cde * sro, cde * cro, -sde,
	}
}
