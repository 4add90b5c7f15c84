package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conneroisu/calcexpr/pkg/node"
	"github.com/conneroisu/calcexpr/pkg/parser"
)

// Color scheme: blue for banner/separators, yellow for results, red for
// errors, green for the startup banner text, cyan for informational lines.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const replLine = "-------------------------------------------"

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calcexpr session",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	if useComplex {
		return startRepl(cmd.OutOrStdout(), mustComplexParser())
	}

	return startRepl(cmd.OutOrStdout(), mustRealParser())
}

func printBanner(w io.Writer, backend string) {
	blueColor.Fprintf(w, "%s\n", replLine)
	greenColor.Fprintf(w, "calcexpr repl (%s)\n", backend)
	blueColor.Fprintf(w, "%s\n", replLine)
	cyanColor.Fprintf(w, "Enter an expression and press enter.\n")
	cyanColor.Fprintf(w, "Declared variables are bound with 'name = value' before use.\n")
	cyanColor.Fprintf(w, "Type :help for commands, :quit to exit.\n")
	blueColor.Fprintf(w, "%s\n", replLine)
}

func printHelp(w io.Writer) {
	cyanColor.Fprintln(w, "Available commands:")
	cyanColor.Fprintln(w, "  :help, :h    Show this help")
	cyanColor.Fprintln(w, "  :vars        List bound variables")
	cyanColor.Fprintln(w, "  :quit, :q    Exit the REPL")
}

// startRepl drives the read-eval-print loop for a Parser over backend T.
// Bound names persist across lines: "x = 3" assigns, and any later
// expression referencing x is parsed with x as a free variable whose
// value callBound then supplies from that binding.
func startRepl[T any](w io.Writer, p *parser.Parser[T]) error {
	backend := "real"
	if _, ok := any(p).(*parser.Parser[complex128]); ok {
		backend = "complex"
	}
	printBanner(w, backend)

	rl, err := readline.New("calcexpr> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	bound := make(map[string]T)

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl+D) or interrupt
			fmt.Fprintln(w, "Good bye!")

			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case ":quit", ":q":
			fmt.Fprintln(w, "Good bye!")

			return nil
		case ":help", ":h":
			printHelp(w)

			continue
		case ":vars":
			printVars(w, p, bound)

			continue
		}

		rl.SaveHistory(line)
		evalReplLine(w, p, bound, line)
	}
}

func printVars[T any](w io.Writer, p *parser.Parser[T], bound map[string]T) {
	if len(bound) == 0 {
		cyanColor.Fprintln(w, "(no bound variables)")

		return
	}
	for name, v := range bound {
		cyanColor.Fprintf(w, "%s = %s\n", name, p.ToString(v))
	}
}

// evalReplLine handles one line of input: "name = expr" assigns a binding,
// anything else is parsed and evaluated against the currently bound names.
func evalReplLine[T any](w io.Writer, p *parser.Parser[T], bound map[string]T, line string) {
	if name, rhs, ok := strings.Cut(line, "="); ok && isBareName(strings.TrimSpace(name)) {
		name = strings.TrimSpace(name)

		n, err := p.Parse(strings.TrimSpace(rhs))
		if err != nil {
			redColor.Fprintf(w, "parse error: %v\n", err)

			return
		}

		v, err := callBound(w, n, bound)
		if err != nil {
			return
		}

		bound[name] = v
		yellowColor.Fprintf(w, "%s = %s\n", name, p.ToString(v))

		return
	}

	n, err := p.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "parse error: %v\n", err)

		return
	}

	result, err := callBound(w, n, bound)
	if err != nil {
		return
	}

	yellowColor.Fprintf(w, "%s\n", p.ToString(result))
}

func isBareName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// callBound resolves n's inferred variables against the REPL's bound-name
// table and calls n. A variable that was never assigned via "name = expr"
// is reported rather than silently evaluated at the zero value.
func callBound[T any](w io.Writer, n *node.Node[T], bound map[string]T) (T, error) {
	var zero T

	values := make([]T, len(n.Variables()))
	for i, name := range n.Variables() {
		v, ok := bound[name]
		if !ok {
			redColor.Fprintf(w, "undefined variable %q, assign it first with %q = expr\n", name, name)

			return zero, fmt.Errorf("undefined variable %q", name)
		}
		values[i] = v
	}

	v, err := n.Call(values...)
	if err != nil {
		redColor.Fprintf(w, "evaluation error: %v\n", err)

		return zero, err
	}

	return v, nil
}
