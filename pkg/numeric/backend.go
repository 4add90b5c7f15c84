package numeric

// Backend is the contract a numeric type T must satisfy to be used as the
// value type of a Parser/Node pipeline.
type Backend[T any] interface {
	// Parse converts literal text into a T, failing with calcerr.BadCast
	// if the text is not a valid literal for this backend.
	Parse(text string) (T, error)

	// Format renders a T back to text, round-tripping finite values at
	// maximum precision.
	Format(v T) string

	// Hash returns a stable hash of v, used to fold Node structural
	// hashes.
	Hash(v T) uint64

	// Equal reports whether a and b are the same value.
	Equal(a, b T) bool

	// NumberPattern returns the regular expression this backend expects
	// the lexer's "number" token class to recognise. It anchors neither
	// end; the lexer composes it into its combined tokeniser regex.
	NumberPattern() string
}
