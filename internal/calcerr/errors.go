// Package calcerr defines the error kinds produced by the calcexpr pipeline.
//
// Every kind named in the design (lexing, registry validation, syntax
// validation, shunting-yard, and tree building) is its own struct so that
// callers can recover the offending token(s) via errors.As instead of
// string-matching messages. Errors aggregates multiple diagnostics the
// way a single caller-visible error sometimes needs to report more than one
// problem at once.
package calcerr

import (
	"fmt"
	"strings"
)

// LexerError reports a failure to tokenize the input text itself, as
// opposed to a failure to classify an already-produced token.
type LexerError struct {
	Text   string
	Reason string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error: %s (in %q)", e.Reason, e.Text)
}

// BadCast reports that a numeric backend could not parse a literal.
type BadCast struct {
	Token string
}

func (e *BadCast) Error() string {
	return fmt.Sprintf("bad cast: %q is not a valid numeric literal", e.Token)
}

// UnsuitableName reports a registry key or alias target that does not
// match the lexer's name or sign regex.
type UnsuitableName struct {
	Token string
}

func (e *UnsuitableName) Error() string {
	return fmt.Sprintf("unsuitable name: %q", e.Token)
}

// UndefinedSymbol reports a NAME or SIGN token that resolves to nothing in
// the registries and is not a bound variable.
type UndefinedSymbol struct {
	Token string
}

func (e *UndefinedSymbol) Error() string {
	return fmt.Sprintf("undefined symbol: %q", e.Token)
}

// RepeatedSymbol reports a variable name supplied twice to a parse call.
type RepeatedSymbol struct {
	Token string
}

func (e *RepeatedSymbol) Error() string {
	return fmt.Sprintf("repeated symbol: %q", e.Token)
}

// EmptyExpression reports that the tokenizer produced no tokens at all.
type EmptyExpression struct{}

func (e *EmptyExpression) Error() string {
	return "empty expression"
}

// ParenthesisMismatch reports an unmatched LEFT or RIGHT marker.
type ParenthesisMismatch struct {
	Token string
}

func (e *ParenthesisMismatch) Error() string {
	if e.Token == "" {
		return "parenthesis mismatch"
	}

	return fmt.Sprintf("parenthesis mismatch at %q", e.Token)
}

// SyntaxError reports an infix token stream that does not match the
// permitted successor grammar, echoing the offending token and whatever
// remains of the stream for diagnosis.
type SyntaxError struct {
	Token     string
	Remainder string
}

func (e *SyntaxError) Error() string {
	if e.Remainder == "" {
		return fmt.Sprintf("syntax error at %q", e.Token)
	}

	return fmt.Sprintf("syntax error at %q, remainder: %s", e.Token, e.Remainder)
}

// ArgumentsMismatch reports a function/operator call site whose provided
// argument count does not match what was needed.
type ArgumentsMismatch struct {
	Token    string
	Needed   int
	Provided int
}

func (e *ArgumentsMismatch) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("arguments mismatch: needed %d, got %d", e.Needed, e.Provided)
	}

	return fmt.Sprintf("arguments mismatch for %q: needed %d, got %d", e.Token, e.Needed, e.Provided)
}

// UnusedSymbol reports a declared variable that never appears in the built
// tree, or an extra operand left over after tree construction.
type UnusedSymbol struct {
	Token string
}

func (e *UnusedSymbol) Error() string {
	return fmt.Sprintf("unused symbol: %q", e.Token)
}

// Errors aggregates more than one diagnostic, mirroring the teacher's
// ParseErrors accumulator.
type Errors struct {
	errs []error
}

// Add appends a diagnostic to the aggregate.
func (e *Errors) Add(err error) {
	e.errs = append(e.errs, err)
}

// HasErrors reports whether any diagnostic has been recorded.
func (e *Errors) HasErrors() bool {
	return len(e.errs) > 0
}

// Count returns the number of recorded diagnostics.
func (e *Errors) Count() int {
	return len(e.errs)
}

// All returns every recorded diagnostic.
func (e *Errors) All() []error {
	return e.errs
}

// First returns the first recorded diagnostic, or nil if none.
func (e *Errors) First() error {
	if len(e.errs) == 0 {
		return nil
	}

	return e.errs[0]
}

// Error implements the error interface.
func (e *Errors) Error() string {
	switch len(e.errs) {
	case 0:
		return "no errors"
	case 1:
		return e.errs[0].Error()
	}

	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("%d errors:\n%s", len(e.errs), strings.Join(msgs, "\n"))
}
