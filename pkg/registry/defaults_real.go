package registry

import (
	"math"
	"regexp"

	"github.com/conneroisu/calcexpr/pkg/binding"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// Default operator precedence levels for the real backend: addition/
// subtraction bind loosest, multiplication/division/modulo bind tighter,
// and exponentiation binds tightest.
const (
	PrecAdd = iota + 1
	PrecMul
	PrecPow
)

// SignPattern is the default sign-character regex: any character that is
// not a letter, digit, grouping mark, or whitespace. It mirrors
// lexer.DefaultConfig's Sign class, which excludes '.' for the same
// reason: Go's RE2 engine cannot express "not immediately followed by a
// digit" as a lookahead. Operator/prefix/suffix keys are validated here
// as complete strings, so the lexer's code-level special case for a bare
// '.' (see lexer.Lexer.scan) does not apply to this pattern.
const SignPattern = `^(?:[^A-Za-z0-9.(),_\s])+$`

var defaultSignRe = regexp.MustCompile(SignPattern)
var defaultNameRe = regexp.MustCompile(binding.NamePattern)

// NewDefaultReal builds the default real-number registry: the constants,
// operators, prefix/suffix aliases, and math-library functions named in
// the design's default registry section.
func NewDefaultReal() *Registries[float64] {
	r := New[float64](defaultNameRe, defaultSignRe)

	must(r.AddConstant("pi", math.Pi))
	must(r.AddConstant("e", math.E))
	must(r.AddConstant("phi", 1.618033988749895))
	must(r.AddConstant("gamma", 0.5772156649015329))

	must(r.AddOperator("+", PrecAdd, symbol.AssocFull, func(a, b float64) (float64, error) { return a + b, nil }))
	must(r.AddOperator("-", PrecAdd, symbol.AssocLeft, func(a, b float64) (float64, error) { return a - b, nil }))
	must(r.AddOperator("*", PrecMul, symbol.AssocFull, func(a, b float64) (float64, error) { return a * b, nil }))
	must(r.AddOperator("/", PrecMul, symbol.AssocLeft, func(a, b float64) (float64, error) { return a / b, nil }))
	must(r.AddOperator("%", PrecMul, symbol.AssocLeft, func(a, b float64) (float64, error) { return math.Mod(a, b), nil }))
	must(r.AddOperator("^", PrecPow, symbol.AssocRight, func(a, b float64) (float64, error) { return realPow(a, b), nil }))

	must(r.AddFunction("id", 1, func(args []float64) (float64, error) { return args[0], nil }))
	must(r.AddFunction("neg", 1, func(args []float64) (float64, error) { return -args[0], nil }))
	must(r.AddFunction("fact", 1, func(args []float64) (float64, error) { return realFact(args[0]), nil }))

	must(r.AddPrefix("+", "id"))
	must(r.AddPrefix("-", "neg"))
	must(r.AddSuffix("!", "fact"))

	registerRealMath(r)

	return r
}

// realPow uses fast binary exponentiation when the exponent is a positive
// integer in (0, 256], falling back to math.Pow otherwise.
func realPow(base, exp float64) float64 {
	if n := int(exp); float64(n) == exp && n > 0 && n <= 256 {
		result := 1.0
		b := base
		for n > 0 {
			if n&1 == 1 {
				result *= b
			}
			b *= b
			n >>= 1
		}

		return result
	}

	return math.Pow(base, exp)
}

// realFact implements the suffix "!" as a gamma-function-backed factorial,
// returning +Inf once x exceeds the range float64 can represent exactly.
func realFact(x float64) float64 {
	if x > 256 {
		return math.Inf(1)
	}

	return math.Gamma(x + 1)
}

// realLgamma discards math.Lgamma's sign return, matching tgamma/lgamma's
// signature in the ground-truth registry (a bare log-gamma magnitude).
func realLgamma(x float64) float64 {
	lgamma, _ := math.Lgamma(x)

	return lgamma
}

func unary(r *Registries[float64], name string, fn func(float64) float64) {
	must(r.AddFunction(name, 1, func(args []float64) (float64, error) { return fn(args[0]), nil }))
}

func binary(r *Registries[float64], name string, fn func(a, b float64) float64) {
	must(r.AddFunction(name, 2, func(args []float64) (float64, error) { return fn(args[0], args[1]), nil }))
}

// registerRealMath populates the full set of unary/binary functions from
// the C standard math library named in the design's default registry.
func registerRealMath(r *Registries[float64]) {
	unary(r, "abs", math.Abs)
	unary(r, "sqrt", math.Sqrt)
	unary(r, "cbrt", math.Cbrt)
	unary(r, "exp", math.Exp)
	unary(r, "exp2", math.Exp2)
	unary(r, "expm1", math.Expm1)
	unary(r, "log", math.Log)
	unary(r, "log2", math.Log2)
	unary(r, "log10", math.Log10)
	unary(r, "log1p", math.Log1p)
	unary(r, "sin", math.Sin)
	unary(r, "cos", math.Cos)
	unary(r, "tan", math.Tan)
	unary(r, "asin", math.Asin)
	unary(r, "acos", math.Acos)
	unary(r, "atan", math.Atan)
	unary(r, "sinh", math.Sinh)
	unary(r, "cosh", math.Cosh)
	unary(r, "tanh", math.Tanh)
	unary(r, "asinh", math.Asinh)
	unary(r, "acosh", math.Acosh)
	unary(r, "atanh", math.Atanh)
	unary(r, "erf", math.Erf)
	unary(r, "erfc", math.Erfc)
	unary(r, "tgamma", math.Gamma)
	unary(r, "lgamma", realLgamma)
	unary(r, "floor", math.Floor)
	unary(r, "ceil", math.Ceil)
	unary(r, "round", math.Round)
	unary(r, "trunc", math.Trunc)

	binary(r, "hypot", math.Hypot)
	binary(r, "pow", realPow)
	binary(r, "atan2", math.Atan2)
	binary(r, "copysign", math.Copysign)
	binary(r, "nextafter", math.Nextafter)
	binary(r, "fdim", math.Dim)
	binary(r, "fmax", math.Max)
	binary(r, "fmin", math.Min)
	binary(r, "fmod", math.Mod)
	binary(r, "remainder", math.Remainder)

	must(r.AddFunction("fma", 3, func(args []float64) (float64, error) {
		return math.FMA(args[0], args[1], args[2]), nil
	}))
}
