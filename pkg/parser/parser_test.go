package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/calcexpr/internal/calcerr"
)

func newTestParser(t *testing.T) *Parser[float64] {
	t.Helper()

	p, err := NewReal()
	require.NoError(t, err)

	return p
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		vars     []string
		call     []float64
		expected float64
	}{
		{"addition and multiplication precedence", "1 + 2 * 3", nil, nil, 7},
		{"two variables", "x + y", []string{"x", "y"}, []float64{1, 2}, 3},
		{"binary math function", "hypot(3, 4)", nil, nil, 5},
		{"explicit parens under prefix negation", "-(1+2)", nil, nil, -3},
		{"right-associative exponent chain", "2 ^ 3 ^ 2", nil, nil, 512},
		{"suffix factorial", "3!", nil, nil, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t)

			n, err := p.FromInfix(tt.expr, tt.vars)
			require.NoError(t, err)

			got, err := n.Call(tt.call...)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"1 - 2 - 3", -4},
		{"2 ^ 3 ^ 2", 512},
		{"-2^2", -4},
		{"2 + 3 * 4", 14},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p := newTestParser(t)

			n, err := p.Parse(tt.expr)
			require.NoError(t, err)

			got, err := n.Call()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestEmptyExpressionErrors(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("", nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.EmptyExpression))
}

func TestTrailingOperatorIsSyntaxError(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("1 + ", nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.SyntaxError))
}

func TestUnbalancedParenIsParenthesisMismatch(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("(1 + 2", nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.ParenthesisMismatch))
}

func TestUnknownFunctionIsUndefinedSymbol(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("foo(1)", nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.UndefinedSymbol))
}

func TestDuplicateVariableIsRepeatedSymbol(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("x+y", []string{"x", "x"})
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.RepeatedSymbol))
}

func TestUndeclaredVariableInferredByParse(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("x", nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.UndefinedSymbol))

	n, err := p.Parse("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, n.Variables())

	got, err := n.Call(5)
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-9)
}

func TestCallWrongArityIsArgumentsMismatch(t *testing.T) {
	p := newTestParser(t)

	n, err := p.Parse("x + y")
	require.NoError(t, err)

	_, err = n.Call(1)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.ArgumentsMismatch))
}

func TestSubstituteAndOptimize(t *testing.T) {
	p := newTestParser(t)

	n, err := p.Parse("x + 2 * 3")
	require.NoError(t, err)

	sub, err := p.Substitute(n, "x", 1)
	require.NoError(t, err)
	assert.Empty(t, sub.Variables())

	got, err := sub.Call()
	require.NoError(t, err)
	assert.InDelta(t, 7, got, 1e-9)

	opt, err := p.Optimize(sub)
	require.NoError(t, err)
	assert.True(t, sub.Equal(opt))
}

func TestCastAndToString(t *testing.T) {
	p := newTestParser(t)

	v, err := p.Cast("3.5")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, v, 1e-9)
	assert.Equal(t, "3.5", p.ToString(v))
}

func TestFromPostfixMatchesFromInfix(t *testing.T) {
	p := newTestParser(t)

	infixNode, err := p.FromInfix("1 + 2 * 3", nil)
	require.NoError(t, err)

	postfixNode, err := p.FromPostfix(infixNode.Postfix(), infixNode.Variables())
	require.NoError(t, err)

	assert.True(t, infixNode.Equal(postfixNode))
}

func TestFunctionArityMismatchAtCallSite(t *testing.T) {
	p := newTestParser(t)

	_, err := p.FromInfix("hypot(3)", nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*calcerr.ArgumentsMismatch))
}
