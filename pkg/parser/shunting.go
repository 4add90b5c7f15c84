package parser

import (
	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// stackItem is one entry of the shunting-yard operator stack: either a
// FUNCTION/PREFIX/OPERATOR symbol awaiting lower-precedence output, or a
// LEFT marker, which additionally tracks whether it opened a function
// call (isCall) and, if so, the expected and so-far-provided argument
// counts. Every call-opening LEFT is immediately preceded on the stack by
// the FUNCTION/PREFIX symbol it belongs to, so closing it pops that
// symbol onto the output queue too.
type stackItem[T any] struct {
	data     symbolData[T]
	isCall   bool
	expected int
	provided int
}

// shuntingYard runs Step D: converts an already syntax-checked, PREFIX-
// expanded symbol stream into a postfix queue, tracking argument counts
// through nested function calls via a parallel apply-function stack.
func shuntingYard[T any](stream []symbolData[T]) ([]symbolData[T], error) {
	var ops []stackItem[T]
	out := make([]symbolData[T], 0, len(stream))
	pendingCall := false

	pop := func() stackItem[T] {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]

		return top
	}

	for _, sd := range stream {
		switch k := sd.sym.Kind(); k {
		case symbol.KindConstant, symbol.KindVariable, symbol.KindSuffix:
			out = append(out, sd)

		case symbol.KindFunction, symbol.KindPrefix:
			ops = append(ops, stackItem[T]{data: sd})
			pendingCall = true

		case symbol.KindLeft:
			item := stackItem[T]{data: sd}
			if pendingCall {
				item.isCall = true
				item.expected = ops[len(ops)-1].data.sym.Arity()
				item.provided = 1
				pendingCall = false
			}
			ops = append(ops, item)

		case symbol.KindSeparator:
			for len(ops) > 0 && ops[len(ops)-1].data.sym.Kind() != symbol.KindLeft {
				out = append(out, pop().data)
			}
			if len(ops) == 0 {
				return nil, &calcerr.ParenthesisMismatch{Token: sd.token}
			}
			if !ops[len(ops)-1].isCall {
				return nil, &calcerr.SyntaxError{Token: sd.token}
			}
			ops[len(ops)-1].provided++

		case symbol.KindOperator:
			cur := sd.sym.(*symbol.Operator[T])
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.data.sym.Kind() == symbol.KindFunction || top.data.sym.Kind() == symbol.KindPrefix {
					out = append(out, pop().data)

					continue
				}
				topOp, ok := top.data.sym.(*symbol.Operator[T])
				if !ok {
					break
				}
				if topOp.Precedence > cur.Precedence || (topOp.Precedence == cur.Precedence && cur.Assoc != symbol.AssocRight) {
					out = append(out, pop().data)

					continue
				}

				break
			}
			ops = append(ops, stackItem[T]{data: sd})

		case symbol.KindRight:
			for len(ops) > 0 && ops[len(ops)-1].data.sym.Kind() != symbol.KindLeft {
				out = append(out, pop().data)
			}
			if len(ops) == 0 {
				return nil, &calcerr.ParenthesisMismatch{Token: sd.token}
			}

			left := pop()
			if left.isCall {
				if left.expected != left.provided {
					return nil, &calcerr.ArgumentsMismatch{Needed: left.expected, Provided: left.provided}
				}

				out = append(out, pop().data)
			}

		default:
			return nil, &calcerr.SyntaxError{Token: sd.token}
		}
	}

	for len(ops) > 0 {
		top := pop()
		if top.data.sym.Kind() == symbol.KindLeft {
			return nil, &calcerr.ParenthesisMismatch{Token: top.data.token}
		}
		out = append(out, top.data)
	}

	return out, nil
}
