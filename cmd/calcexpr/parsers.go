package main

import (
	"fmt"
	"os"

	"github.com/conneroisu/calcexpr/pkg/parser"
)

// mustRealParser and mustComplexParser construct the long-lived Parser for
// each subcommand. Construction only fails if the backend's number pattern
// itself fails to compile, which cannot happen for the built-in backends,
// so a failure here indicates a broken build rather than bad user input.
func mustRealParser() *parser.Parser[float64] {
	p, err := parser.NewReal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return p
}

func mustComplexParser() *parser.Parser[complex128] {
	p, err := parser.NewComplex()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return p
}
