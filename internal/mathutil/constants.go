package mathutil

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// WrapPi folds an angle in radians into (-π, π].
func WrapPi(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a <= -math.Pi {
		a += TwoPi
	} else if a > math.Pi {
		a -= TwoPi
	}
	return a
}
