package parser

import (
	"strings"

	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// category groups the grammar's permitted-successor table into the three
// rows it actually distinguishes. Stream start is treated as if preceded
// by one of catOperand's members, since the same successor set applies.
type category int

const (
	catOperand category = iota // after LEFT, SEPARATOR, OPERATOR (or stream start)
	catCallee                  // after FUNCTION, PREFIX
	catValue                   // after RIGHT, CONSTANT/VARIABLE, SUFFIX
)

func categoryOf(k symbol.Kind) category {
	switch k {
	case symbol.KindLeft, symbol.KindSeparator, symbol.KindOperator:
		return catOperand
	case symbol.KindFunction, symbol.KindPrefix:
		return catCallee
	default: // KindRight, KindConstant, KindVariable, KindSuffix
		return catValue
	}
}

func allowedAfter(cat category, k symbol.Kind) bool {
	switch cat {
	case catOperand:
		return k == symbol.KindConstant || k == symbol.KindVariable ||
			k == symbol.KindLeft || k == symbol.KindFunction || k == symbol.KindPrefix
	case catCallee:
		return k == symbol.KindLeft
	case catValue:
		return k == symbol.KindRight || k == symbol.KindSeparator ||
			k == symbol.KindOperator || k == symbol.KindSuffix
	}

	return false
}

func joinTokens[T any](stream []symbolData[T]) string {
	texts := make([]string, len(stream))
	for i, sd := range stream {
		texts[i] = sd.token
	}

	return strings.Join(texts, " ")
}

// validateAndExpand runs Step C: checks the classified stream against the
// permitted-successor grammar and wraps each PREFIX's operand in an
// implicit LEFT/RIGHT pair.
//
// A stack of open-scope markers tracks every LEFT currently open, auto or
// explicit. An auto scope closes — together with any auto scopes stacked
// directly on top of it — as soon as the value it wraps is complete and
// the innermost open scope is still an auto one; an explicit scope (a
// user-written paren, or a function call's paren) only ever closes on its
// own matching RIGHT, so an auto scope nested inside one does not close
// early just because its immediate operand is a parenthesised
// sub-expression rather than a single token.
func validateAndExpand[T any](stream []symbolData[T]) ([]symbolData[T], error) {
	if len(stream) == 0 {
		return nil, &calcerr.EmptyExpression{}
	}

	out := make([]symbolData[T], 0, len(stream)+2)
	prevCat := catOperand
	var scopes []bool // true: auto-inserted scope; false: explicit scope

	closesChain := func(sd symbolData[T]) bool {
		if sd.sym.Kind() == symbol.KindSuffix {
			return true
		}
		if op, ok := sd.sym.(*symbol.Operator[T]); ok && op.Assoc == symbol.AssocRight {
			return true
		}

		return false
	}

	closeAutoScopes := func(i int) {
		chain := i+1 < len(stream) && closesChain(stream[i+1])
		if chain {
			return
		}
		for len(scopes) > 0 && scopes[len(scopes)-1] {
			out = append(out, symbolData[T]{token: ")", sym: symbol.Right{}})
			scopes = scopes[:len(scopes)-1]
		}
		if len(scopes) == 0 {
			prevCat = catValue
		}
	}

	for i, sd := range stream {
		k := sd.sym.Kind()
		if !allowedAfter(prevCat, k) {
			return nil, &calcerr.SyntaxError{Token: sd.token, Remainder: joinTokens(stream[i:])}
		}

		out = append(out, sd)

		switch k {
		case symbol.KindPrefix:
			out = append(out, symbolData[T]{token: "(", sym: symbol.Left{}})
			scopes = append(scopes, true)
			prevCat = catOperand

			continue

		case symbol.KindLeft:
			scopes = append(scopes, false)
			prevCat = catOperand

			continue

		case symbol.KindRight:
			if len(scopes) > 0 {
				scopes = scopes[:len(scopes)-1]
			}
			prevCat = catValue
			closeAutoScopes(i)

			continue
		}

		prevCat = categoryOf(k)

		if completesValue(k) {
			closeAutoScopes(i)
		}
	}

	if prevCat != catValue {
		return nil, &calcerr.SyntaxError{Token: stream[len(stream)-1].token}
	}

	for len(scopes) > 0 && scopes[len(scopes)-1] {
		out = append(out, symbolData[T]{token: ")", sym: symbol.Right{}})
		scopes = scopes[:len(scopes)-1]
	}

	return out, nil
}
