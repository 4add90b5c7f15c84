package parser

import (
	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/binding"
	"github.com/conneroisu/calcexpr/pkg/lexer"
	"github.com/conneroisu/calcexpr/pkg/numeric"
	"github.com/conneroisu/calcexpr/pkg/registry"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// symbolData is the output of Step B: a token's literal text paired with
// the Symbol it resolved to.
type symbolData[T any] struct {
	token string
	sym   symbol.Symbol[T]
}

// completesValue reports whether a classified symbol of kind k finishes an
// operand on the left of wherever classification currently stands — a
// CONSTANT, VARIABLE, RIGHT, or SUFFIX. This is the classified-stream
// equivalent of the lexer-level "previous token was {NUMBER end, NAME,
// RIGHT, SUFFIX position}" rule: a NAME that classified to FUNCTION can
// never legally precede a signed literal either way (the syntax step
// would reject it regardless of how the sign split), so the only cases
// that matter are the ones that complete a value.
func completesValue(k symbol.Kind) bool {
	switch k {
	case symbol.KindConstant, symbol.KindVariable, symbol.KindRight, symbol.KindSuffix:
		return true
	}

	return false
}

// prefixPositionAllowed reports whether a SIGN token at this point in the
// stream is allowed to resolve as PREFIX: stream start, or immediately
// after LEFT, SEPARATOR, OPERATOR, or another PREFIX.
func prefixPositionAllowed(havePrev bool, prevKind symbol.Kind) bool {
	if !havePrev {
		return true
	}

	switch prevKind {
	case symbol.KindLeft, symbol.KindSeparator, symbol.KindOperator, symbol.KindPrefix:
		return true
	}

	return false
}

// classify runs Step B of the pipeline: turn a raw token stream into
// symbolData, resolving NAME against constants/functions/bound variables
// and SIGN against prefix/suffix/operator tables by context. It is shared
// between the infix and postfix pipelines; the postfix lexer never
// produces a lexer-prefixed NUMBER token, so the embedded-sign splitting
// branch below simply never triggers in that mode.
func classify[T any](
	toks []lexer.Token,
	regs *registry.Registries[T],
	backend numeric.Backend[T],
	vb *binding.VariableBinding[T],
	lx *lexer.Lexer,
) ([]symbolData[T], error) {
	out := make([]symbolData[T], 0, len(toks))

	havePrev := false
	var prevKind symbol.Kind

	emit := func(sd symbolData[T]) {
		out = append(out, sd)
		prevKind = sd.sym.Kind()
		havePrev = true
	}

	classifyNumber := func(text string) (symbolData[T], error) {
		v, err := backend.Parse(text)
		if err != nil {
			return symbolData[T]{}, err
		}

		return symbolData[T]{token: text, sym: symbol.NewConstant(v, backend.Hash(v))}, nil
	}

	classifySign := func(text string) (symbolData[T], error) {
		if prefixPositionAllowed(havePrev, prevKind) {
			if pfx, ok := regs.LookupPrefix(text); ok {
				return symbolData[T]{token: text, sym: pfx}, nil
			}
		}
		if sfx, ok := regs.LookupSuffix(text); ok {
			return symbolData[T]{token: text, sym: sfx}, nil
		}
		if op, ok := regs.LookupOperator(text); ok {
			return symbolData[T]{token: text, sym: op}, nil
		}

		return symbolData[T]{}, &calcerr.UndefinedSymbol{Token: text}
	}

	classifyName := func(text string) (symbolData[T], error) {
		if v, ok := regs.LookupConstant(text); ok {
			return symbolData[T]{token: text, sym: symbol.NewConstant(v, backend.Hash(v))}, nil
		}
		if fn, ok := regs.LookupFunction(text); ok {
			return symbolData[T]{token: text, sym: fn}, nil
		}
		if idx, ok := vb.IndexOf(text); ok {
			return symbolData[T]{token: text, sym: symbol.NewVariable(text, idx)}, nil
		}

		return symbolData[T]{}, &calcerr.UndefinedSymbol{Token: text}
	}

	for i, tok := range toks {
		switch tok.Kind {
		case lexer.NUMBER:
			if lx.IsPrefixed(tok.Text) {
				splitBecausePrev := havePrev && completesValue(prevKind)
				splitBecauseNext := false
				if i+1 < len(toks) && toks[i+1].Kind == lexer.SIGN {
					next := toks[i+1].Text
					if regs.IsSuffix(next) {
						splitBecauseNext = true
					} else if op, ok := regs.LookupOperator(next); ok && op.Assoc == symbol.AssocRight {
						splitBecauseNext = true
					}
				}

				if splitBecausePrev || splitBecauseNext {
					sign, rest := lx.Split(tok.Text)

					signData, err := classifySign(sign)
					if err != nil {
						return nil, err
					}
					emit(signData)

					numData, err := classifyNumber(rest)
					if err != nil {
						return nil, err
					}
					emit(numData)

					continue
				}
			}

			numData, err := classifyNumber(tok.Text)
			if err != nil {
				return nil, err
			}
			emit(numData)

		case lexer.NAME:
			nameData, err := classifyName(tok.Text)
			if err != nil {
				return nil, err
			}
			emit(nameData)

		case lexer.SIGN:
			signData, err := classifySign(tok.Text)
			if err != nil {
				return nil, err
			}
			emit(signData)

		case lexer.LEFT:
			emit(symbolData[T]{token: tok.Text, sym: symbol.Left{}})

		case lexer.RIGHT:
			emit(symbolData[T]{token: tok.Text, sym: symbol.Right{}})

		case lexer.SEPARATOR:
			emit(symbolData[T]{token: tok.Text, sym: symbol.Separator{}})
		}
	}

	return out, nil
}
