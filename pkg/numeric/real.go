package numeric

import (
	"math"
	"strconv"

	"github.com/conneroisu/calcexpr/internal/calcerr"
)

// realNumberPattern accepts ±d, ±d., ±.d, ±d.d, each optionally followed by
// an exponent, plus the ±NaN / ±Inf sentinels.
const realNumberPattern = `[+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|NaN|Inf)`

// Real is the default IEEE-754 double-precision Backend.
type Real struct{}

// NewReal constructs the real-number backend.
func NewReal() Real { return Real{} }

// Parse implements Backend.
func (Real) Parse(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &calcerr.BadCast{Token: text}
	}

	return v, nil
}

// Format implements Backend, round-tripping finite values at full
// precision via strconv's shortest-representation mode.
func (Real) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Hash implements Backend.
func (Real) Hash(v float64) uint64 {
	return math.Float64bits(v)
}

// Equal implements Backend. NaN is never equal to itself, matching IEEE
// semantics and the backend's own parity with float64 comparison.
func (Real) Equal(a, b float64) bool {
	return a == b
}

// NumberPattern implements Backend.
func (Real) NumberPattern() string {
	return realNumberPattern
}
