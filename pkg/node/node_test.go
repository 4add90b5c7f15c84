package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/calcexpr/pkg/parser"
)

func TestNodeInfixPostfixTreeRendering(t *testing.T) {
	p, err := parser.NewReal(parser.WithOptimize[float64](false))
	require.NoError(t, err)

	n, err := p.FromInfix("1 + 2 * 3", nil)
	require.NoError(t, err)

	assert.Equal(t, "1 2 3 * +", n.Postfix())
	assert.Contains(t, n.Infix(), "+")
	assert.Equal(t, "[+]\n\\_[1]\n\\_[*]\n  \\_[2]\n  \\_[3]\n", n.Tree())
}

func TestNodeEqualIgnoresBindingIdentity(t *testing.T) {
	p, err := parser.NewReal()
	require.NoError(t, err)

	a, err := p.FromInfix("x + 1", []string{"x"})
	require.NoError(t, err)

	b, err := p.FromInfix("x + 1", []string{"x"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestNodeEqualDetectsDifference(t *testing.T) {
	p, err := parser.NewReal()
	require.NoError(t, err)

	a, err := p.FromInfix("x + 1", []string{"x"})
	require.NoError(t, err)

	b, err := p.FromInfix("x + 2", []string{"x"})
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}

func TestNodeCopyIsIndependentlyCallable(t *testing.T) {
	p, err := parser.NewReal()
	require.NoError(t, err)

	n, err := p.FromInfix("x + y", []string{"x", "y"})
	require.NoError(t, err)

	cp, err := n.Copy()
	require.NoError(t, err)

	got1, err := n.Call(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3, got1, 1e-9)

	got2, err := cp.Call(10, 20)
	require.NoError(t, err)
	assert.InDelta(t, 30, got2, 1e-9)

	// the original's binding slots were not disturbed by evaluating the copy
	got3, err := n.Call(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3, got3, 1e-9)
}

func TestNodePrunedVariablesDropsUnused(t *testing.T) {
	p, err := parser.NewReal()
	require.NoError(t, err)

	n, err := p.FromInfix("x + 1", []string{"x"})
	require.NoError(t, err)

	sub, err := n.Substitute("x", 5)
	require.NoError(t, err)

	assert.Empty(t, sub.PrunedVariables())
	assert.Empty(t, sub.Variables())

	got, err := sub.Call()
	require.NoError(t, err)
	assert.InDelta(t, 6, got, 1e-9)
}

func TestNodeOptimizeFoldsConstantSubtree(t *testing.T) {
	p, err := parser.NewReal(parser.WithOptimize[float64](false))
	require.NoError(t, err)

	n, err := p.FromInfix("x + 2 * 3", []string{"x"})
	require.NoError(t, err)

	// unfolded: the "2 * 3" subtree is still two constant leaves and an operator
	assert.Equal(t, "x 2 3 * +", n.Postfix())

	opt, err := n.Optimize()
	require.NoError(t, err)

	// folded: "2 * 3" collapses to a single constant leaf "6"
	assert.Equal(t, "x 6 +", opt.Postfix())
}

func TestNodeCallArityMismatch(t *testing.T) {
	p, err := parser.NewReal()
	require.NoError(t, err)

	n, err := p.FromInfix("x + y", []string{"x", "y"})
	require.NoError(t, err)

	_, err = n.Call(1)
	assert.Error(t, err)
}
