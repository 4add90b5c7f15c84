// Package main implements the calcexpr command-line interface.
//
// calcexpr compiles a textual mathematical expression into an evaluable
// Node tree over either the real (float64) or complex (complex128) numeric
// backend. The CLI supports three modes of operation:
//
//   - calcexpr eval EXPR    one-shot evaluation
//   - calcexpr repl         interactive read-eval-print loop
//   - calcexpr tree EXPR    print the expression's tree diagram
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var useComplex bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "calcexpr",
		Short: "calcexpr: a parameterised expression compiler",
		Long: `calcexpr compiles textual mathematical expressions into evaluable,
inspectable expression trees over a real or complex numeric backend.`,
	}

	rootCmd.PersistentFlags().BoolVar(&useComplex, "complex", false, "use the complex128 backend instead of float64")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newTreeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
