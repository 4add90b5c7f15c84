package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree EXPR",
		Short: "Print an expression's tree diagram",
		Args:  cobra.ExactArgs(1),
		RunE:  runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	expr := args[0]

	if useComplex {
		p := mustComplexParser()
		n, err := p.Parse(expr)
		if err != nil {
			return fmt.Errorf("parse error: %w", err)
		}
		fmt.Print(n.Tree())

		return nil
	}

	p := mustRealParser()
	n, err := p.Parse(expr)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	fmt.Print(n.Tree())

	return nil
}
