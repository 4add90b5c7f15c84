// Package numeric defines the Backend contract that parameterises the rest
// of calcexpr over a concrete numeric type T.
//
// A Backend knows how to parse a literal's text into T, format T back to
// text, hash T, and compare two T values for equality. The default
// backends are Real (float64) and Complex (complex128); callers may supply
// their own for other numeric domains as long as it satisfies Backend.
package numeric
