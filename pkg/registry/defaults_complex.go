package registry

import (
	"math/cmplx"

	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// NewDefaultComplex builds the default complex-number registry: the same
// constants, operators, and aliases as NewDefaultReal, generalised to
// complex128 arithmetic, plus the imaginary unit constant i. The "!"
// suffix alias and the "%" operator are not registered here; both exist
// only in the real registry.
func NewDefaultComplex() *Registries[complex128] {
	r := New[complex128](defaultNameRe, defaultSignRe)

	must(r.AddConstant("pi", complex(3.141592653589793, 0)))
	must(r.AddConstant("e", complex(2.718281828459045, 0)))
	must(r.AddConstant("phi", complex(1.618033988749895, 0)))
	must(r.AddConstant("gamma", complex(0.5772156649015329, 0)))
	must(r.AddConstant("i", complex(0, 1)))

	must(r.AddOperator("+", PrecAdd, symbol.AssocFull, func(a, b complex128) (complex128, error) { return a + b, nil }))
	must(r.AddOperator("-", PrecAdd, symbol.AssocLeft, func(a, b complex128) (complex128, error) { return a - b, nil }))
	must(r.AddOperator("*", PrecMul, symbol.AssocFull, func(a, b complex128) (complex128, error) { return a * b, nil }))
	must(r.AddOperator("/", PrecMul, symbol.AssocLeft, func(a, b complex128) (complex128, error) { return a / b, nil }))
	must(r.AddOperator("^", PrecPow, symbol.AssocRight, func(a, b complex128) (complex128, error) { return cmplx.Pow(a, b), nil }))

	must(r.AddFunction("id", 1, func(args []complex128) (complex128, error) { return args[0], nil }))
	must(r.AddFunction("neg", 1, func(args []complex128) (complex128, error) { return -args[0], nil }))

	must(r.AddPrefix("+", "id"))
	must(r.AddPrefix("-", "neg"))

	registerComplexMath(r)

	return r
}

func cunary(r *Registries[complex128], name string, fn func(complex128) complex128) {
	must(r.AddFunction(name, 1, func(args []complex128) (complex128, error) { return fn(args[0]), nil }))
}

// registerComplexMath populates the complex analogues of the default math
// functions, drawn from math/cmplx where the real-backend counterpart has
// a well-defined complex extension.
func registerComplexMath(r *Registries[complex128]) {
	cunary(r, "abs", func(z complex128) complex128 { return complex(cmplx.Abs(z), 0) })
	cunary(r, "sqrt", cmplx.Sqrt)
	cunary(r, "exp", cmplx.Exp)
	cunary(r, "log", cmplx.Log)
	cunary(r, "log10", cmplx.Log10)
	cunary(r, "sin", cmplx.Sin)
	cunary(r, "cos", cmplx.Cos)
	cunary(r, "tan", cmplx.Tan)
	cunary(r, "asin", cmplx.Asin)
	cunary(r, "acos", cmplx.Acos)
	cunary(r, "atan", cmplx.Atan)
	cunary(r, "sinh", cmplx.Sinh)
	cunary(r, "cosh", cmplx.Cosh)
	cunary(r, "tanh", cmplx.Tanh)
	cunary(r, "conj", cmplx.Conj)

	must(r.AddFunction("pow", 2, func(args []complex128) (complex128, error) {
		return cmplx.Pow(args[0], args[1]), nil
	}))
}
