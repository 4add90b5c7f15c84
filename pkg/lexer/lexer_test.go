package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLexer(t *testing.T) *Lexer {
	t.Helper()

	l, err := New(DefaultConfig(`[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`))
	require.NoError(t, err)

	return l
}

func TestTokenizeInfixBasic(t *testing.T) {
	l := newTestLexer(t)

	tokens, err := l.TokenizeInfix("1 + 2 * hypot(3, 4)")
	require.NoError(t, err)

	kinds := make([]Kind, len(tokens))
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
		texts[i] = tok.Text
	}

	assert.Equal(t, []Kind{NUMBER, SIGN, NUMBER, SIGN, NAME, LEFT, NUMBER, SEPARATOR, NUMBER, RIGHT}, kinds)
	assert.Equal(t, []string{"1", "+", "2", "*", "hypot", "(", "3", ",", "4", ")"}, texts)
}

func TestTokenizeInfixEmbedsLeadingSign(t *testing.T) {
	l := newTestLexer(t)

	tokens, err := l.TokenizeInfix("1e-2-3")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, Token{Text: "1e-2", Kind: NUMBER, Line: 1, Column: 1}, tokens[0])
	assert.Equal(t, NUMBER, tokens[1].Kind)
	assert.Equal(t, "-3", tokens[1].Text)
	assert.True(t, l.IsPrefixed(tokens[1].Text))
}

func TestTokenizePostfixKeepsStandaloneSign(t *testing.T) {
	l := newTestLexer(t)

	tokens, err := l.TokenizePostfix("3 4 -")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, []Kind{NUMBER, NUMBER, SIGN}, []Kind{tokens[0].Kind, tokens[1].Kind, tokens[2].Kind})
}

func TestTokenizePostfixSplitsNegativeLiteral(t *testing.T) {
	l := newTestLexer(t)

	tokens, err := l.TokenizePostfix("-3 4 +")
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, SIGN, tokens[0].Kind)
	assert.Equal(t, "-", tokens[0].Text)
	assert.Equal(t, NUMBER, tokens[1].Kind)
	assert.Equal(t, "3", tokens[1].Text)
}

func TestSplit(t *testing.T) {
	l := newTestLexer(t)

	sign, rest := l.Split("-3")
	assert.Equal(t, "-", sign)
	assert.Equal(t, "3", rest)

	sign, rest = l.Split("3")
	assert.Equal(t, "", sign)
	assert.Equal(t, "3", rest)
}

func TestTokenizeInfixUnknownCharacterErrors(t *testing.T) {
	// The default Sign class accepts '@', so restrict it to make '@' unknown.
	cfg := DefaultConfig(`\d+`)
	cfg.Sign = `[-+*/^]`

	l, err := New(cfg)
	require.NoError(t, err)

	_, err = l.TokenizeInfix("1 @ 2")
	require.Error(t, err)
}

func TestNewRejectsCollidingMarkers(t *testing.T) {
	cfg := DefaultConfig(`\d+`)
	cfg.Separator = cfg.Left

	_, err := New(cfg)
	assert.Error(t, err)
}
