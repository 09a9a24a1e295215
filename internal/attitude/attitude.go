// Package attitude describes where a star sensor points and builds the
// rotation that carries celestial directions into the sensor frame.
package attitude

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"star-sensor-sim/internal/mathutil"
)

// Attitude is a pointing in degrees: right ascension and declination of
// the boresight plus roll about it.
type Attitude struct {
	RA   float64 `json:"ra" yaml:"ra"`
	De   float64 `json:"de" yaml:"de"`
	Roll float64 `json:"roll" yaml:"roll"`
}

// ErrNotFinite reports a NaN or infinite angle.
var ErrNotFinite = errors.New("attitude: angle is not finite")

// Validate rejects NaN and infinite angles.
func (a Attitude) Validate() error {
	for _, v := range [...]float64{a.RA, a.De, a.Roll} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrNotFinite, a)
		}
	}
	return nil
}

// Radians is an Attitude converted to radians.
type Radians struct {
	RA, De, Roll float64
}

// Radians converts the attitude once for a synthesis call.
func (a Attitude) Radians() Radians {
	return Radians{
		RA:   mathutil.Deg2Rad(a.RA),
		De:   mathutil.Deg2Rad(a.De),
		Roll: mathutil.Deg2Rad(a.Roll),
	}
}

func (a Attitude) String() string {
	return fmt.Sprintf("ra=%g de=%g roll=%g", a.RA, a.De, a.Roll)
}

// Parse builds an Attitude from decimal-degree strings.
func Parse(ra, de, roll string) (Attitude, error) {
	var a Attitude
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"ra", ra, &a.RA},
		{"de", de, &a.De},
		{"roll", roll, &a.Roll},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.text), 64)
		if err != nil {
			return Attitude{}, fmt.Errorf("attitude: parse %s %q: %w", f.name, f.text, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Attitude{}, fmt.Errorf("%w: %s %q", ErrNotFinite, f.name, f.text)
		}
		*f.dst = v
	}
	return a, nil
}
