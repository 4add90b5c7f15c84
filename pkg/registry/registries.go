// Package registry implements the validated symbol containers a Parser
// composes with its Lexer: constants, functions, operators, and the
// prefix/suffix alias tables that map a symbolic token onto a unary
// function name.
//
// Registries are explicit, mutable, builder-populated objects rather than
// the source material's global macro-registration tables; New returns an
// empty registry and callers (or the default-registry builders in this
// package) populate it via the validated Add* methods.
package registry

import (
	"regexp"

	"github.com/conneroisu/calcexpr/internal/calcerr"
	"github.com/conneroisu/calcexpr/pkg/symbol"
)

// Registries holds every validated symbol container a Parser consults
// while classifying tokens.
type Registries[T any] struct {
	nameRe *regexp.Regexp
	signRe *regexp.Regexp

	constants map[string]T
	functions map[string]*symbol.Function[T]
	operators map[string]*symbol.Operator[T]
	prefixes  map[string]string
	suffixes  map[string]string

	nextID uint64
}

// New constructs an empty Registries validated against nameRe (for
// constant/function names and alias targets) and signRe (for
// operator/prefix/suffix keys).
func New[T any](nameRe, signRe *regexp.Regexp) *Registries[T] {
	return &Registries[T]{
		nameRe:    nameRe,
		signRe:    signRe,
		constants: make(map[string]T),
		functions: make(map[string]*symbol.Function[T]),
		operators: make(map[string]*symbol.Operator[T]),
		prefixes:  make(map[string]string),
		suffixes:  make(map[string]string),
	}
}

// must panics if err is non-nil. The default registry builders call it on
// every Add* call: their symbol set is fixed at compile time, so a
// non-nil error there means a typo in this package, not bad input, and
// should fail loudly rather than silently drop a symbol.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func (r *Registries[T]) id() uint64 {
	r.nextID++

	return r.nextID
}

// AddConstant registers a named constant value.
func (r *Registries[T]) AddConstant(name string, value T) error {
	if !r.nameRe.MatchString(name) {
		return &calcerr.UnsuitableName{Token: name}
	}

	r.constants[name] = value

	return nil
}

// AddFunction registers an n-ary callable under name.
func (r *Registries[T]) AddFunction(name string, arity int, fn func([]T) (T, error)) error {
	if !r.nameRe.MatchString(name) {
		return &calcerr.UnsuitableName{Token: name}
	}

	r.functions[name] = symbol.NewFunction(name, arity, fn, false, r.id())

	return nil
}

// AddOperator registers a binary operator under its symbolic key.
func (r *Registries[T]) AddOperator(
	key string,
	precedence int,
	assoc symbol.Associativity,
	fn func(a, b T) (T, error),
) error {
	if !r.signRe.MatchString(key) {
		return &calcerr.UnsuitableName{Token: key}
	}

	r.operators[key] = symbol.NewOperator(key, precedence, assoc, fn, r.id())

	return nil
}

// AddPrefix aliases a symbolic key onto an existing unary function name.
func (r *Registries[T]) AddPrefix(key, functionName string) error {
	if !r.signRe.MatchString(key) {
		return &calcerr.UnsuitableName{Token: key}
	}
	if !r.nameRe.MatchString(functionName) {
		return &calcerr.UnsuitableName{Token: functionName}
	}

	r.prefixes[key] = functionName

	return nil
}

// AddSuffix aliases a symbolic key onto an existing unary function name.
func (r *Registries[T]) AddSuffix(key, functionName string) error {
	if !r.signRe.MatchString(key) {
		return &calcerr.UnsuitableName{Token: key}
	}
	if !r.nameRe.MatchString(functionName) {
		return &calcerr.UnsuitableName{Token: functionName}
	}

	r.suffixes[key] = functionName

	return nil
}

// LookupConstant resolves a constant by name.
func (r *Registries[T]) LookupConstant(name string) (T, bool) {
	v, ok := r.constants[name]

	return v, ok
}

// LookupFunction resolves a function by name.
func (r *Registries[T]) LookupFunction(name string) (*symbol.Function[T], bool) {
	f, ok := r.functions[name]

	return f, ok
}

// LookupOperator resolves an operator by its symbolic key.
func (r *Registries[T]) LookupOperator(key string) (*symbol.Operator[T], bool) {
	op, ok := r.operators[key]

	return op, ok
}

// LookupPrefix resolves a prefix alias to the underlying Function symbol,
// wrapped as a Prefix. Reports false if the alias or its target function
// is not registered.
func (r *Registries[T]) LookupPrefix(key string) (*symbol.Prefix[T], bool) {
	fnName, ok := r.prefixes[key]
	if !ok {
		return nil, false
	}

	fn, ok := r.functions[fnName]
	if !ok {
		return nil, false
	}

	return symbol.NewPrefix(key, fn), true
}

// LookupSuffix resolves a suffix alias to the underlying Function symbol,
// wrapped as a Suffix. Reports false if the alias or its target function
// is not registered.
func (r *Registries[T]) LookupSuffix(key string) (*symbol.Suffix[T], bool) {
	fnName, ok := r.suffixes[key]
	if !ok {
		return nil, false
	}

	fn, ok := r.functions[fnName]
	if !ok {
		return nil, false
	}

	return symbol.NewSuffix(key, fn), true
}

// IsOperator reports whether key names a registered operator.
func (r *Registries[T]) IsOperator(key string) bool {
	_, ok := r.operators[key]

	return ok
}

// IsPrefix reports whether key names a registered prefix alias whose
// target function exists.
func (r *Registries[T]) IsPrefix(key string) bool {
	_, ok := r.LookupPrefix(key)

	return ok
}

// IsSuffix reports whether key names a registered suffix alias whose
// target function exists.
func (r *Registries[T]) IsSuffix(key string) bool {
	_, ok := r.LookupSuffix(key)

	return ok
}
