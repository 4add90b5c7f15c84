package parser

import (
	"errors"

	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/binding"
	"github.com/conneroisu/calcexpr/pkg/lexer"
	"github.com/conneroisu/calcexpr/pkg/node"
	"github.com/conneroisu/calcexpr/pkg/numeric"
	"github.com/conneroisu/calcexpr/pkg/registry"
)

// Parser composes a Lexer, a Registries, and a numeric Backend into the
// from_infix / from_postfix / parse pipeline. Registries remain mutable on
// the instance after construction: callers may add constants, functions,
// operators, and aliases at any time between parses.
type Parser[T any] struct {
	lx       *lexer.Lexer
	regs     *registry.Registries[T]
	backend  numeric.Backend[T]
	optimize bool
}

// Option configures a Parser at construction time.
type Option[T any] func(*Parser[T])

// WithLexer overrides the default lexer built from the backend's number
// pattern, e.g. to use non-default grammar markers.
func WithLexer[T any](lx *lexer.Lexer) Option[T] {
	return func(p *Parser[T]) { p.lx = lx }
}

// WithOptimize toggles constant folding during tree construction. Enabled
// by default.
func WithOptimize[T any](enabled bool) Option[T] {
	return func(p *Parser[T]) { p.optimize = enabled }
}

// New constructs a Parser over an arbitrary backend and registry, for
// callers using a numeric type besides the two built-in backends. NewReal
// and NewComplex cover the common case with their default registries
// already populated.
func New[T any](backend numeric.Backend[T], regs *registry.Registries[T], opts ...Option[T]) (*Parser[T], error) {
	lx, err := lexer.New(lexer.DefaultConfig(backend.NumberPattern()))
	if err != nil {
		return nil, err
	}

	p := &Parser[T]{lx: lx, regs: regs, backend: backend, optimize: true}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// NewReal constructs a Parser over the real (float64) backend, with the
// default constants/operators/functions populated.
func NewReal(opts ...Option[float64]) (*Parser[float64], error) {
	return New[float64](numeric.NewReal(), registry.NewDefaultReal(), opts...)
}

// NewComplex constructs a Parser over the complex (complex128) backend,
// with the default constants/operators/functions populated.
func NewComplex(opts ...Option[complex128]) (*Parser[complex128], error) {
	return New[complex128](numeric.NewComplex(), registry.NewDefaultComplex(), opts...)
}

// Registries exposes the Parser's symbol tables for further registration.
func (p *Parser[T]) Registries() *registry.Registries[T] { return p.regs }

// FromInfix runs the full infix pipeline (Steps A-E) against text,
// declaring variables in the order given.
func (p *Parser[T]) FromInfix(text string, variables []string) (*node.Node[T], error) {
	vb, err := binding.New[T](variables, nil)
	if err != nil {
		return nil, err
	}

	toks, err := p.lx.TokenizeInfix(text)
	if err != nil {
		return nil, err
	}

	classified, err := classify(toks, p.regs, p.backend, vb, p.lx)
	if err != nil {
		return nil, err
	}

	expanded, err := validateAndExpand(classified)
	if err != nil {
		return nil, err
	}

	postfix, err := shuntingYard(expanded)
	if err != nil {
		return nil, err
	}

	return buildTree(postfix, p.lx, vb, p.backend, p.optimize)
}

// FromPostfix runs Step B and Step E directly against postfix-notation
// text, skipping the infix-only syntax validation and shunting-yard
// conversion.
func (p *Parser[T]) FromPostfix(text string, variables []string) (*node.Node[T], error) {
	vb, err := binding.New[T](variables, nil)
	if err != nil {
		return nil, err
	}

	toks, err := p.lx.TokenizePostfix(text)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, &calcerr.EmptyExpression{}
	}

	classified, err := classify(toks, p.regs, p.backend, vb, p.lx)
	if err != nil {
		return nil, err
	}

	return buildTree(classified, p.lx, vb, p.backend, p.optimize)
}

// Parse infers the variable list by retrying FromInfix: each UndefinedSymbol
// is appended to the declared set and the parse is retried, since it could
// only have meant an as-yet-undeclared variable.
func (p *Parser[T]) Parse(text string) (*node.Node[T], error) {
	var vars []string
	seen := make(map[string]bool)

	for {
		n, err := p.FromInfix(text, vars)
		if err == nil {
			return n, nil
		}

		var undef *calcerr.UndefinedSymbol
		if errors.As(err, &undef) {
			if seen[undef.Token] {
				return nil, err
			}
			seen[undef.Token] = true
			vars = append(vars, undef.Token)

			continue
		}

		// A name that can never legitimately appear (fails the variable
		// name regex) can never legitimately be an undeclared variable
		// either.
		var bad *calcerr.UnsuitableName
		if errors.As(err, &bad) {
			return nil, &calcerr.UndefinedSymbol{Token: bad.Token}
		}

		return nil, err
	}
}

// Substitute replaces every leaf referencing name with a constant leaf of
// value, returning a new tree. When constant folding is enabled on the
// Parser, the new tree is folded as well.
func (p *Parser[T]) Substitute(n *node.Node[T], name string, value T) (*node.Node[T], error) {
	sub, err := n.Substitute(name, value)
	if err != nil || !p.optimize {
		return sub, err
	}

	return sub.Optimize()
}

// Optimize re-runs constant folding over an already-built tree.
func (p *Parser[T]) Optimize(n *node.Node[T]) (*node.Node[T], error) {
	return n.Optimize()
}

// Cast converts literal text into T using the Parser's backend.
func (p *Parser[T]) Cast(text string) (T, error) {
	return p.backend.Parse(text)
}

// ToString renders a T back to text using the Parser's backend.
func (p *Parser[T]) ToString(v T) string {
	return p.backend.Format(v)
}
