package parser

import (
	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/binding"
	"github.com/conneroisu/calcexpr/pkg/lexer"
	"github.com/conneroisu/calcexpr/pkg/node"
	"github.com/conneroisu/calcexpr/pkg/numeric"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// buildTree runs Step E: consumes a postfix queue into a Node tree via an
// operand stack, then verifies exactly one operand remains and every
// declared variable actually occurs in it. Constant folding is handled by
// a single trailing call to Node.Optimize rather than folding node-by-node
// during the walk below, since Optimize already implements exactly the
// "all children constant" rule Step E calls for and re-deriving it here
// inline would just be the same check written twice.
func buildTree[T any](
	queue []symbolData[T],
	lx *lexer.Lexer,
	vb *binding.VariableBinding[T],
	backend numeric.Backend[T],
	optimize bool,
) (*node.Node[T], error) {
	var stack []*node.Node[T]

	for _, sd := range queue {
		switch sd.sym.Kind() {
		case symbol.KindLeft, symbol.KindRight, symbol.KindSeparator:
			return nil, &calcerr.SyntaxError{Token: sd.token}

		default:
			arity := sd.sym.Arity()
			if len(stack) < arity {
				return nil, &calcerr.ArgumentsMismatch{Token: sd.token, Needed: arity, Provided: len(stack)}
			}

			children := make([]*node.Node[T], arity)
			copy(children, stack[len(stack)-arity:])
			stack = stack[:len(stack)-arity]

			n, err := node.New(sd.token, sd.sym, children, lx, vb, backend)
			if err != nil {
				return nil, err
			}

			stack = append(stack, n)
		}
	}

	switch len(stack) {
	case 0:
		return nil, &calcerr.SyntaxError{Token: ""}
	case 1:
		// exactly one operand, as required
	default:
		return nil, &calcerr.UnusedSymbol{Token: stack[1].Token()}
	}

	root := stack[0]

	if optimize {
		optimized, err := root.Optimize()
		if err != nil {
			return nil, err
		}
		root = optimized
	}

	pruned := make(map[string]bool, len(root.PrunedVariables()))
	for _, name := range root.PrunedVariables() {
		pruned[name] = true
	}
	for _, name := range vb.Names() {
		if !pruned[name] {
			return nil, &calcerr.UnusedSymbol{Token: name}
		}
	}

	return root, nil
}
