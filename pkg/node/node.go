// Package node implements Node, the immutable expression tree every
// Parser pipeline builds and every evaluation walks.
//
// A Node is a value-like, structurally-hashed tree: its token text, its
// Symbol payload, and its ordered children never change after
// construction. Copy, Substitute, and Optimize all return a new tree
// rather than mutating the receiver. The one piece of state a Node does
// mutate in place is the value slots of its shared VariableBinding,
// written by Call immediately before a post-order walk evaluates the
// tree — this is why the design calls out that a single Node must not
// be called concurrently with itself, even though independent copies
// may be evaluated in parallel.
package node

import (
	"fmt"
	"strings"

	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/binding"
	"github.com/conneroisu/calcexpr/pkg/lexer"
	"github.com/conneroisu/calcexpr/pkg/numeric"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// Node is one position in an expression tree.
type Node[T any] struct {
	token    string
	sym      symbol.Symbol[T]
	children []*Node[T]
	hash     uint64

	lx      *lexer.Lexer
	vb      *binding.VariableBinding[T]
	backend numeric.Backend[T]
}

// New constructs a Node from a symbol and its already-built children. It
// fails with calcerr.ArgumentsMismatch if len(children) does not match
// sym.Arity().
func New[T any](
	token string,
	sym symbol.Symbol[T],
	children []*Node[T],
	lx *lexer.Lexer,
	vb *binding.VariableBinding[T],
	backend numeric.Backend[T],
) (*Node[T], error) {
	if len(children) != sym.Arity() {
		return nil, &calcerr.ArgumentsMismatch{Token: token, Needed: sym.Arity(), Provided: len(children)}
	}

	return &Node[T]{
		token:    token,
		sym:      sym,
		children: children,
		hash:     buildHash(sym, children),
		lx:       lx,
		vb:       vb,
		backend:  backend,
	}, nil
}

// combine folds one more hash value into seed, in the style of
// boost::hash_combine.
func combine(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

func buildHash[T any](sym symbol.Symbol[T], children []*Node[T]) uint64 {
	if len(children) == 0 {
		return sym.Hash()
	}

	var h uint64
	for _, c := range children {
		h = combine(h, c.hash)
	}

	return combine(h, sym.Hash())
}

// apply invokes the callable carried by a Function, Operator, Prefix, or
// Suffix symbol against already-evaluated argument values. Constant and
// Variable are handled by the caller, since neither has a callable.
func apply[T any](sym symbol.Symbol[T], args []T) (T, error) {
	switch s := sym.(type) {
	case *symbol.Function[T]:
		return s.Fn(args)
	case *symbol.Operator[T]:
		return s.Fn(args[0], args[1])
	case *symbol.Prefix[T]:
		return s.Underlying.Fn(args)
	case *symbol.Suffix[T]:
		return s.Underlying.Fn(args)
	default:
		var zero T

		return zero, fmt.Errorf("node: symbol kind %s carries no callable", sym.Kind())
	}
}

func (n *Node[T]) eval() (T, error) {
	switch s := n.sym.(type) {
	case *symbol.Constant[T]:
		return s.Value, nil
	case *symbol.Variable:
		return n.vb.Get(s.Index), nil
	default:
		args := make([]T, len(n.children))
		for i, c := range n.children {
			v, err := c.eval()
			if err != nil {
				var zero T

				return zero, err
			}
			args[i] = v
		}

		return apply(n.sym, args)
	}
}

// Call writes values into the tree's shared VariableBinding, in declared
// order, then evaluates the tree post-order. It fails with
// calcerr.ArgumentsMismatch if len(values) does not match Variables().
func (n *Node[T]) Call(values ...T) (T, error) {
	if err := n.vb.Update(values); err != nil {
		var zero T

		return zero, err
	}

	return n.eval()
}

// Token returns this node's literal text.
func (n *Node[T]) Token() string { return n.token }

// Symbol returns this node's Symbol payload.
func (n *Node[T]) Symbol() symbol.Symbol[T] { return n.sym }

// Children returns this node's ordered child list. Leaves return nil.
func (n *Node[T]) Children() []*Node[T] { return n.children }

// Hash returns the node's cached structural hash.
func (n *Node[T]) Hash() uint64 { return n.hash }

// Variables returns the declared variable names of this node's shared
// binding, in insertion order.
func (n *Node[T]) Variables() []string { return n.vb.Names() }

// PrunedVariables returns the subset of declared variables that actually
// occur in this node's tree, in declared order. It is computed by
// tokenising the node's own postfix serialisation and filtering, per the
// design, rather than walking the tree directly, so that it agrees
// exactly with what a round trip through postfix() would see.
func (n *Node[T]) PrunedVariables() []string {
	toks, err := n.lx.TokenizePostfix(n.Postfix())
	if err != nil {
		return nil
	}

	present := make(map[string]bool, len(toks))
	for _, tok := range toks {
		if tok.Kind == lexer.NAME {
			present[tok.Text] = true
		}
	}

	declared := n.vb.Names()
	out := make([]string, 0, len(declared))
	for _, name := range declared {
		if present[name] {
			out = append(out, name)
		}
	}

	return out
}

// Equal reports structural equality: equal hashes, and a parallel
// traversal finding an equal symbol at every position. Two Variable
// leaves are equal iff they reference the same binding index, regardless
// of which binding instance backs them.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if other == nil {
		return false
	}
	if n.hash != other.hash {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}

	if !symbolsEqual[T](n.sym, other.sym) {
		return false
	}

	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}

	return true
}

func symbolsEqual[T any](a, b symbol.Symbol[T]) bool {
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case *symbol.Variable:
		bv := b.(*symbol.Variable)

		return av.Index == bv.Index
	case *symbol.Constant[T]:
		bv := b.(*symbol.Constant[T])

		return av.Hash() == bv.Hash()
	case *symbol.Function[T]:
		return av.Equal(b.(*symbol.Function[T]))
	case *symbol.Operator[T]:
		return av.Equal(b.(*symbol.Operator[T]))
	case *symbol.Prefix[T]:
		bv := b.(*symbol.Prefix[T])

		return av.Underlying.Equal(bv.Underlying)
	case *symbol.Suffix[T]:
		bv := b.(*symbol.Suffix[T])

		return av.Underlying.Equal(bv.Underlying)
	default:
		return true // Left, Right, Separator: equal by kind alone.
	}
}

// Copy produces a new tree sharing no mutable state with the receiver:
// a fresh VariableBinding holding only this node's pruned variables, with
// every Variable leaf rewritten to the corresponding new slot index. Both
// the original and the copy remain independently usable and callable.
func (n *Node[T]) Copy() (*Node[T], error) {
	pruned := n.PrunedVariables()

	newVB, remap, err := n.vb.Prune(pruned)
	if err != nil {
		return nil, err
	}

	return n.rebind(newVB, remap), nil
}

func (n *Node[T]) rebind(vb *binding.VariableBinding[T], remap map[int]int) *Node[T] {
	if v, ok := n.sym.(*symbol.Variable); ok {
		newIdx := remap[v.Index]
		newSym := symbol.NewVariable(v.Name, newIdx)

		return &Node[T]{token: n.token, sym: newSym, hash: newSym.Hash(), lx: n.lx, vb: vb, backend: n.backend}
	}

	if len(n.children) == 0 {
		return &Node[T]{token: n.token, sym: n.sym, hash: n.hash, lx: n.lx, vb: vb, backend: n.backend}
	}

	children := make([]*Node[T], len(n.children))
	for i, c := range n.children {
		children[i] = c.rebind(vb, remap)
	}

	return &Node[T]{token: n.token, sym: n.sym, children: children, hash: buildHash(n.sym, children), lx: n.lx, vb: vb, backend: n.backend}
}

// Substitute returns a new tree equal to the receiver with every leaf
// referencing variable name replaced by a constant leaf of value. The new
// tree's binding drops that variable entirely.
func (n *Node[T]) Substitute(name string, value T) (*Node[T], error) {
	replaced := n.substitute(name, value)

	return replaced.Copy()
}

func (n *Node[T]) substitute(name string, value T) *Node[T] {
	if v, ok := n.sym.(*symbol.Variable); ok && v.Name == name {
		token := n.backend.Format(value)
		sym := symbol.NewConstant[T](value, n.backend.Hash(value))

		return &Node[T]{token: token, sym: sym, hash: sym.Hash(), lx: n.lx, vb: n.vb, backend: n.backend}
	}

	if len(n.children) == 0 {
		return n
	}

	children := make([]*Node[T], len(n.children))
	changed := false
	for i, c := range n.children {
		children[i] = c.substitute(name, value)
		if children[i] != c {
			changed = true
		}
	}
	if !changed {
		return n
	}

	return &Node[T]{token: n.token, sym: n.sym, children: children, hash: buildHash(n.sym, children), lx: n.lx, vb: n.vb, backend: n.backend}
}

// Optimize re-runs constant folding bottom-up: any subtree whose
// children are all Constant leaves is replaced by a single Constant leaf
// holding the evaluated result.
func (n *Node[T]) Optimize() (*Node[T], error) {
	if len(n.children) == 0 {
		return n, nil
	}

	children := make([]*Node[T], len(n.children))
	for i, c := range n.children {
		oc, err := c.Optimize()
		if err != nil {
			return nil, err
		}
		children[i] = oc
	}

	allConst := true
	args := make([]T, len(children))
	for i, c := range children {
		cst, ok := c.sym.(*symbol.Constant[T])
		if !ok {
			allConst = false

			break
		}
		args[i] = cst.Value
	}

	if allConst {
		if val, err := apply(n.sym, args); err == nil {
			token := n.backend.Format(val)
			sym := symbol.NewConstant[T](val, n.backend.Hash(val))

			return &Node[T]{token: token, sym: sym, hash: sym.Hash(), lx: n.lx, vb: n.vb, backend: n.backend}, nil
		}
	}

	return &Node[T]{token: n.token, sym: n.sym, children: children, hash: buildHash(n.sym, children), lx: n.lx, vb: n.vb, backend: n.backend}, nil
}

// Postfix serialises the tree as postfix text: each child's postfix form
// joined by spaces, followed by this node's own token.
func (n *Node[T]) Postfix() string {
	if len(n.children) == 0 {
		return n.token
	}

	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.Postfix()
	}

	return strings.Join(parts, " ") + " " + n.token
}

// Infix serialises the tree as infix text, parenthesising only where the
// grammar would otherwise be ambiguous: around an operand whose own
// operator binds looser than its parent, around an operand on the
// disfavoured side of an equal-precedence parent, and around a
// lexer-prefixed (signed) literal appearing as the right child of an
// operator.
func (n *Node[T]) Infix() string {
	return n.infix(nil, false)
}

func (n *Node[T]) infix(parent *symbol.Operator[T], isRightChild bool) string {
	switch s := n.sym.(type) {
	case *symbol.Function[T]:
		parts := make([]string, len(n.children))
		for i, c := range n.children {
			parts[i] = c.infix(nil, false)
		}

		return s.Name + "(" + strings.Join(parts, ",") + ")"
	case *symbol.Operator[T]:
		left := n.children[0].infix(s, false)
		right := n.children[1].infix(s, true)

		text := left + s.Name + right
		if parent != nil && needsParens(n, parent, isRightChild) {
			return "(" + text + ")"
		}

		return text
	case *symbol.Prefix[T]:
		return s.Name + "(" + n.children[0].infix(nil, false) + ")"
	case *symbol.Suffix[T]:
		return "(" + n.children[0].infix(nil, false) + ")" + s.Name
	default:
		text := n.token
		if parent != nil && needsParens(n, parent, isRightChild) {
			return "(" + text + ")"
		}

		return text
	}
}

func needsParens[T any](n *Node[T], parent *symbol.Operator[T], isRightChild bool) bool {
	if op, ok := n.sym.(*symbol.Operator[T]); ok {
		if op.Precedence < parent.Precedence {
			return true
		}
		if op.Precedence == parent.Precedence {
			switch parent.Assoc {
			case symbol.AssocLeft:
				return isRightChild
			case symbol.AssocRight:
				return !isRightChild
			}
		}

		return false
	}

	if isRightChild && n.lx.IsPrefixed(n.token) {
		return true
	}

	return false
}

// Tree renders the node as an ASCII tree diagram: "[token]" at each
// position, with child branches prefixed by "\_" and continuation bars
// "|" for any sibling that still has further siblings below it.
func (n *Node[T]) Tree() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", n.token)
	n.writeChildren(&b, "")

	return b.String()
}

func (n *Node[T]) writeChildren(b *strings.Builder, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1
		fmt.Fprintf(b, "%s\\_[%s]\n", prefix, c.token)

		childPrefix := prefix
		if last {
			childPrefix += "  "
		} else {
			childPrefix += "| "
		}

		c.writeChildren(b, childPrefix)
	}
}
