package symbol

// Variable is a zero-arity leaf that reads its value from a slot in the
// tree's shared VariableBinding at call time. Two Variable symbols are
// never equal to one another by plain identity; Node-level equality
// instead compares their binding Index, since that is what determines
// whether two leaves refer to "the same" declared variable. Hash is
// derived from Index rather than identity so that Node-level equality
// and Node-level hashing stay in agreement (a Node's hash folds its
// leaves' symbol hashes, and two index-equal variable leaves must
// produce the same fold).
type Variable struct {
	Name  string
	Index int
}

// NewVariable constructs a Variable bound to the given slot index.
func NewVariable(name string, index int) *Variable {
	return &Variable{Name: name, Index: index}
}

func (v *Variable) Kind() Kind { return KindVariable }
func (v *Variable) Arity() int { return 0 }
func (v *Variable) Hash() uint64 {
	return hashString("variable") ^ (uint64(v.Index)*1099511628211 + 1)
}

// Constant is a zero-arity leaf carrying a literal or folded value.
type Constant[T any] struct {
	Value T
	hash  uint64
}

// NewConstant constructs a Constant, seeding its hash from the backend's
// own hash of the value.
func NewConstant[T any](value T, hash uint64) *Constant[T] {
	return &Constant[T]{Value: value, hash: hash}
}

func (c *Constant[T]) Kind() Kind   { return KindConstant }
func (c *Constant[T]) Arity() int   { return 0 }
func (c *Constant[T]) Hash() uint64 { return c.hash }

// Function is an n-ary callable bound to a registry entry. PureAlias marks
// functions that compare equal across distinct registrations that share a
// name; otherwise equality is by the registry-assigned identity id.
// Registries.AddFunction always registers with PureAlias false.
type Function[T any] struct {
	Name      string
	Fn        func([]T) (T, error)
	ArityN    int
	PureAlias bool
	id        uint64
}

// NewFunction constructs a Function symbol.
func NewFunction[T any](name string, arity int, fn func([]T) (T, error), pureAlias bool, id uint64) *Function[T] {
	return &Function[T]{Name: name, Fn: fn, ArityN: arity, PureAlias: pureAlias, id: id}
}

func (f *Function[T]) Kind() Kind { return KindFunction }
func (f *Function[T]) Arity() int { return f.ArityN }
func (f *Function[T]) Hash() uint64 {
	if f.PureAlias {
		return hashString(f.Name)
	}

	return f.id
}

// Equal implements the Function equality rule: same callable identity, or
// always-equal when both sides are pure name-aliased to the same name.
func (f *Function[T]) Equal(other *Function[T]) bool {
	if f.PureAlias && other.PureAlias {
		return f.Name == other.Name
	}

	return f.id == other.id
}

// Operator is a binary callable carrying precedence and associativity.
type Operator[T any] struct {
	Name       string
	Fn         func(a, b T) (T, error)
	Precedence int
	Assoc      Associativity
	id         uint64
}

// NewOperator constructs an Operator symbol.
func NewOperator[T any](name string, precedence int, assoc Associativity, fn func(a, b T) (T, error), id uint64) *Operator[T] {
	return &Operator[T]{Name: name, Fn: fn, Precedence: precedence, Assoc: assoc, id: id}
}

func (o *Operator[T]) Kind() Kind   { return KindOperator }
func (o *Operator[T]) Arity() int   { return 2 }
func (o *Operator[T]) Hash() uint64 { return o.id }

// Equal implements the Operator equality rule: same callable identity and
// same (precedence, associativity).
func (o *Operator[T]) Equal(other *Operator[T]) bool {
	return o.id == other.id && o.Precedence == other.Precedence && o.Assoc == other.Assoc
}

// Left is the grammar marker for an opening parenthesis.
type Left struct{}

func (Left) Kind() Kind   { return KindLeft }
func (Left) Arity() int   { return 0 }
func (Left) Hash() uint64 { return hashString("(") }

// Right is the grammar marker for a closing parenthesis.
type Right struct{}

func (Right) Kind() Kind   { return KindRight }
func (Right) Arity() int   { return 0 }
func (Right) Hash() uint64 { return hashString(")") }

// Separator is the grammar marker between function arguments.
type Separator struct{}

func (Separator) Kind() Kind   { return KindSeparator }
func (Separator) Arity() int   { return 0 }
func (Separator) Hash() uint64 { return hashString(",") }

// Prefix wraps a unary Function as a prefix operator alias (e.g. "-" -> neg).
type Prefix[T any] struct {
	Name       string
	Underlying *Function[T]
}

// NewPrefix constructs a Prefix alias around a unary Function.
func NewPrefix[T any](name string, underlying *Function[T]) *Prefix[T] {
	return &Prefix[T]{Name: name, Underlying: underlying}
}

func (p *Prefix[T]) Kind() Kind   { return KindPrefix }
func (p *Prefix[T]) Arity() int   { return 1 }
func (p *Prefix[T]) Hash() uint64 { return p.Underlying.Hash() }

// Suffix wraps a unary Function as a suffix operator alias (e.g. "!" -> fact).
type Suffix[T any] struct {
	Name       string
	Underlying *Function[T]
}

// NewSuffix constructs a Suffix alias around a unary Function.
func NewSuffix[T any](name string, underlying *Function[T]) *Suffix[T] {
	return &Suffix[T]{Name: name, Underlying: underlying}
}

func (s *Suffix[T]) Kind() Kind   { return KindSuffix }
func (s *Suffix[T]) Arity() int   { return 1 }
func (s *Suffix[T]) Hash() uint64 { return s.Underlying.Hash() }
