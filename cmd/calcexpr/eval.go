package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/calcexpr/pkg/node"
	"github.com/conneroisu/calcexpr/pkg/parser"
)

var varAssignments []string

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression and print the result",
		Long: `eval parses EXPR, inferring any undeclared variables, and evaluates it.
Free variables are supplied with repeated --var name=value flags.`,
		Args: cobra.ExactArgs(1),
		RunE: runEval,
	}

	cmd.Flags().StringArrayVar(&varAssignments, "var", nil, "variable assignment name=value, may be repeated")

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	expr := args[0]

	if useComplex {
		return evalWith(expr, mustComplexParser())
	}

	return evalWith(expr, mustRealParser())
}

// evalWith parses expr against p, resolves --var assignments against the
// inferred variable list, calls the resulting Node, and prints the result.
func evalWith[T any](expr string, p *parser.Parser[T]) error {
	n, err := p.Parse(expr)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	values, err := resolveValues(p, n, varAssignments)
	if err != nil {
		return err
	}

	result, err := n.Call(values...)
	if err != nil {
		return fmt.Errorf("evaluation error: %w", err)
	}

	fmt.Println(p.ToString(result))

	return nil
}

// resolveValues maps "name=value" assignments onto p's declared variable
// order, in the order n.Variables() names them.
func resolveValues[T any](p *parser.Parser[T], n *node.Node[T], assignments []string) ([]T, error) {
	byName := make(map[string]T, len(assignments))
	for _, a := range assignments {
		name, text, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var assignment %q, expected name=value", a)
		}

		v, err := p.Cast(text)
		if err != nil {
			return nil, fmt.Errorf("invalid value in --var %q: %w", a, err)
		}
		byName[name] = v
	}

	names := n.Variables()
	values := make([]T, len(names))
	for i, name := range names {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("missing --var for undeclared variable %q", name)
		}
		values[i] = v
	}

	return values, nil
}
