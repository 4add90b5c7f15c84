// Package lexer implements the first stage of the calcexpr pipeline: a
// regex-driven scanner that walks expression text left to right and
// emits a stream of Tokens.
//
// A Lexer recognizes exactly six kinds of token, each backed by its own
// compiled pattern: NUMBER (a backend-specific numeric literal), NAME
// (an identifier), SIGN (a non-alphanumeric, non-grouping character —
// the symbol alphabet operators, prefixes, and suffixes are drawn from),
// and the three single-string grammar markers LEFT, RIGHT, and SEPARATOR.
// The DefaultConfig Sign pattern matches one character per token, so a
// multi-character key such as "**" is scanned as two SIGN tokens and is
// never matched as a whole.
//
// Whitespace between tokens is skipped silently; any run of input that
// matches none of the six patterns fails the scan with a calcerr.LexerError.
//
// Because the NUMBER pattern itself permits a leading sign (to support
// literals like "-3" and "1e-2"), a single scanned match can embed what
// is, in context, really a separate operator or prefix token glued to
// the digits that follow it. The Lexer exposes IsPrefixed and Split so a
// caller with more context — the parser's classification stage sees the
// token immediately before it in the already-classified stream — can
// decide whether to keep the sign glued to the literal or split it off.
// TokenizePostfix resolves this itself, since postfix notation has no
// such ambiguity to defer.
package lexer
