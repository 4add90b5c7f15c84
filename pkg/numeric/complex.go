package numeric

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/conneroisu/calcexpr/internal/calcerr"
)

// realTermPattern is the real-valued term shared by both the plain real
// literal and each side of a complex literal.
const realTermPattern = `[+-]?(?:(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?|NaN|Inf)`

// complexNumberPattern accepts a bare real (`a`), a pure imaginary (`aj`),
// or a full complex literal (`a+bj` / `a-bj`), with `j` or `i` as the
// imaginary unit.
const complexNumberPattern = realTermPattern + `(?:(?:` + realTermPattern + `)?[ij])?`

var complexLiteralRe = regexp.MustCompile(`^(` + realTermPattern + `)(` + realTermPattern + `)?([ij])?$`)

// Complex is the default complex double-precision Backend.
type Complex struct{}

// NewComplex constructs the complex-number backend.
func NewComplex() Complex { return Complex{} }

// Parse implements Backend. Accepted forms: `a`, `aj`, `a+bj`, `a-bj`.
func (Complex) Parse(text string) (complex128, error) {
	m := complexLiteralRe.FindStringSubmatch(text)
	if m == nil {
		return 0, &calcerr.BadCast{Token: text}
	}

	first, second, unit := m[1], m[2], m[3]

	firstVal, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return 0, &calcerr.BadCast{Token: text}
	}

	// No imaginary unit at all: a bare real literal.
	if unit == "" {
		if second != "" {
			// Two terms without a trailing unit is not a valid literal
			// (e.g. "3+4" is two reals, not a complex number).
			return 0, &calcerr.BadCast{Token: text}
		}

		return complex(firstVal, 0), nil
	}

	// A trailing unit with no second term: the first term is the
	// imaginary part ("4j", "-4i").
	if second == "" {
		return complex(0, firstVal), nil
	}

	secondVal, err := strconv.ParseFloat(second, 64)
	if err != nil {
		return 0, &calcerr.BadCast{Token: text}
	}

	return complex(firstVal, secondVal), nil
}

// Format implements Backend, emitting "a+bj" with the sign glued to the
// imaginary part, dropping a zero real or imaginary part except that a
// pure-zero value formats as "0j".
func (Complex) Format(v complex128) string {
	re, im := real(v), imag(v)

	if re == 0 && im == 0 {
		return "0j"
	}

	reStr := strconv.FormatFloat(re, 'g', -1, 64)

	if re == 0 {
		return formatImagPart(im) + "j"
	}
	if im == 0 {
		return reStr
	}

	imPart := formatImagPart(im)
	if !strings.HasPrefix(imPart, "-") {
		imPart = "+" + imPart
	}

	return fmt.Sprintf("%s%sj", reStr, imPart)
}

// formatImagPart formats the imaginary component without a leading '+'.
func formatImagPart(im float64) string {
	return strconv.FormatFloat(im, 'g', -1, 64)
}

// Hash implements Backend.
func (Complex) Hash(v complex128) uint64 {
	reBits := math.Float64bits(real(v))
	imBits := math.Float64bits(imag(v))

	// Fold the two halves together the same way Node folds child hashes.
	h := reBits
	h ^= imBits + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)

	return h
}

// Equal implements Backend.
func (Complex) Equal(a, b complex128) bool {
	return a == b
}

// NumberPattern implements Backend.
func (Complex) NumberPattern() string {
	return complexNumberPattern
}
