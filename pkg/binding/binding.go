// Package binding implements VariableBinding, the ordered name list and
// parallel value-slot array shared between a Node tree and its caller.
//
// Rather than the pointer-to-mutable-value-per-leaf the source material
// uses, every leaf Variable carries only an index into a binding's slot
// array. This removes aliasing hazards between copies: Node.Copy rewrites
// indices once against a freshly allocated binding instead of needing
// reference-counted cycle breaking.
package binding

import (
	"regexp"

	"github.com/conneroisu/calcexpr/internal/calcerr"
)

// NamePattern is the default identifier regex variable names must match:
// a letter or underscore followed by letters, digits, or underscores.
const NamePattern = `^[A-Za-z_][A-Za-z_0-9]*$`

var defaultNameRe = regexp.MustCompile(NamePattern)

// VariableBinding is the ordered, de-duplicated list of variable names for
// one parse, plus the mutable value slot each leaf Variable reads from.
type VariableBinding[T any] struct {
	names  []string
	index  map[string]int
	values []T
	nameRe *regexp.Regexp
}

// New constructs a VariableBinding over the given declared names, in
// order. It fails with calcerr.RepeatedSymbol on a duplicate and
// calcerr.UnsuitableName on a name that does not match nameRe (pass nil to
// use the default identifier pattern).
func New[T any](names []string, nameRe *regexp.Regexp) (*VariableBinding[T], error) {
	if nameRe == nil {
		nameRe = defaultNameRe
	}

	b := &VariableBinding[T]{
		names:  make([]string, 0, len(names)),
		index:  make(map[string]int, len(names)),
		values: make([]T, len(names)),
		nameRe: nameRe,
	}

	for _, name := range names {
		if !nameRe.MatchString(name) {
			return nil, &calcerr.UnsuitableName{Token: name}
		}
		if _, dup := b.index[name]; dup {
			return nil, &calcerr.RepeatedSymbol{Token: name}
		}

		b.index[name] = len(b.names)
		b.names = append(b.names, name)
	}

	return b, nil
}

// Names returns the declared variable names in insertion order.
func (b *VariableBinding[T]) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)

	return out
}

// Len reports how many variables are declared.
func (b *VariableBinding[T]) Len() int { return len(b.names) }

// IndexOf returns the slot index of name, if declared.
func (b *VariableBinding[T]) IndexOf(name string) (int, bool) {
	idx, ok := b.index[name]

	return idx, ok
}

// Update writes values into the binding's slots, in declared order. The
// caller must supply exactly Len() values.
func (b *VariableBinding[T]) Update(values []T) error {
	if len(values) != len(b.names) {
		return &calcerr.ArgumentsMismatch{Needed: len(b.names), Provided: len(values)}
	}

	copy(b.values, values)

	return nil
}

// Get reads the current value of the slot at index.
func (b *VariableBinding[T]) Get(index int) T {
	return b.values[index]
}

// Set writes the current value of the slot at index.
func (b *VariableBinding[T]) Set(index int, v T) {
	b.values[index] = v
}

// Prune returns a fresh binding restricted to the names in keep, along
// with a map from each old slot index to its new index in the pruned
// binding (used by Node.Copy to rewrite Variable leaves in one pass).
func (b *VariableBinding[T]) Prune(keep []string) (*VariableBinding[T], map[int]int, error) {
	pruned, err := New[T](keep, b.nameRe)
	if err != nil {
		return nil, nil, err
	}

	remap := make(map[int]int, len(keep))
	for _, name := range keep {
		oldIdx, ok := b.IndexOf(name)
		if !ok {
			continue
		}
		newIdx, _ := pruned.IndexOf(name)
		remap[oldIdx] = newIdx
		pruned.Set(newIdx, b.Get(oldIdx))
	}

	return pruned, remap, nil
}
