package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"star-sensor-sim/internal/raster"
	"star-sensor-sim/internal/sensor"
)

// MissingStrategy controls how the stars to drop are chosen.
type MissingStrategy int

const (
	// MissingDistinct drops exactly min(k, n) distinct visible stars.
	MissingDistinct MissingStrategy = iota
	// MissingWithReplacement draws k indices from [0, n] with repeats.
	// Repeats and the out-of-range index n drop nothing, so fewer than k
	// stars may go missing.
	MissingWithReplacement
	// MissingStrict behaves like MissingDistinct but fails when k > n.
	MissingStrict
)

func (s MissingStrategy) String() string {
	switch s {
	case MissingDistinct:
		return "distinct"
	case MissingWithReplacement:
		return "replacement"
	case MissingStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseMissingStrategy accepts "distinct", "replacement" (or "legacy") and "strict".
func ParseMissingStrategy(s string) (MissingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "distinct":
		return MissingDistinct, nil
	case "replacement", "legacy":
		return MissingWithReplacement, nil
	case "strict":
		return MissingStrict, nil
	}
	return 0, fmt.Errorf("synth: unknown missing-star strategy %q", s)
}

// Unexpected stars get an integer magnitude in [UnexpectedMagMin, UnexpectedMagMax].
const (
	UnexpectedMagMin = -1
	UnexpectedMagMax = 6
)

var (
	ErrTooManyMissing = errors.New("synth: more missing stars requested than visible")
	ErrNegativeCount  = errors.New("synth: negative fault count")
)

// pickMissing returns the set of star indices to skip out of n visible.
func pickMissing(rng *rand.Rand, s MissingStrategy, k, n int) (map[int]struct{}, error) {
	skip := make(map[int]struct{}, k)
	if k == 0 {
		return skip, nil
	}

	switch s {
	case MissingWithReplacement:
		for i := 0; i < k; i++ {
			skip[rng.IntN(n+1)] = struct{}{}
		}
		return skip, nil
	case MissingStrict:
		if k > n {
			return nil, fmt.Errorf("%w: %d > %d", ErrTooManyMissing, k, n)
		}
	}

	for _, i := range rng.Perm(n)[:min(k, n)] {
		skip[i] = struct{}{}
	}
	return skip, nil
}

// Spurious is an unexpected star injected into a frame.
type Spurious struct {
	raster.Point
	Mag float64
}

// injectUnexpected draws n flat-disk stars at uniform positions.
func injectUnexpected(rng *rand.Rand, bg *raster.Raster, g sensor.Geometry, n int) []Spurious {
	out := make([]Spurious, 0, n)
	for i := 0; i < n; i++ {
		s := Spurious{
			Point: raster.Point{X: rng.IntN(g.Width), Y: rng.IntN(g.Height)},
			Mag:   float64(UnexpectedMagMin + rng.IntN(UnexpectedMagMax-UnexpectedMagMin+1)),
		}
		raster.DrawDisk(bg, s.X, s.Y, s.Mag)
		out = append(out, s)
	}
	return out
}
