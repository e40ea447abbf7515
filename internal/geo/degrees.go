// Package geo holds the fixed-precision coordinate type used for stop
// primary keys. Latitude/longitude are stored as microdegrees (six decimal
// places, matching numeric(9,6)) so that key comparisons never go through
// floating-point equality.
package geo

import (
	"fmt"
	"math"
	"strconv"
)

// Degrees is a coordinate scaled by 1e6 (microdegrees).
type Degrees int64

const (
	scale      = 1_000_000
	maxDegrees = 180
)

// FromFloat converts decimal degrees to microdegrees, rounding to the
// nearest microdegree.
func FromFloat(deg float64) Degrees {
	return Degrees(math.Round(deg * scale))
}

// Float returns the coordinate as decimal degrees.
func (d Degrees) Float() float64 {
	return float64(d) / scale
}

// Parse reads a decimal-degree string, e.g. a path parameter like "40.73061".
// NaN, infinities and magnitudes beyond 180 degrees are rejected so the
// scaled key stays inside its column range.
func Parse(s string) (Degrees, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > maxDegrees {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return FromFloat(f), nil
}

// String renders the coordinate as decimal degrees with up to six
// fractional digits, trailing zeros trimmed.
func (d Degrees) String() string {
	return strconv.FormatFloat(d.Float(), 'f', -1, 64)
}

// MarshalJSON emits the coordinate as a plain decimal number.
func (d Degrees) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON accepts a decimal number.
func (d *Degrees) UnmarshalJSON(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
