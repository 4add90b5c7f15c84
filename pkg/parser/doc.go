// Package parser implements the calcexpr parsing pipeline: a Parser
// composes a Lexer with a Registries and turns expression text into a
// Node tree.
//
// The infix pipeline runs five steps, each its own file here: classify.go
// turns a token stream into symbol data (constants, names resolved
// against the registries, signs resolved into operators/prefixes/
// suffixes by context); syntax.go validates the symbol stream against
// the grammar's permitted-successor rules and inserts the implicit
// parentheses a PREFIX needs to bind like a unary function call;
// shunting.go runs Dijkstra's shunting-yard algorithm, tracking
// expected/provided argument counts through nested function calls;
// build.go consumes the resulting postfix queue into a Node tree and,
// when folding is enabled, folds its constant subtrees in one pass over
// the finished tree. The postfix pipeline reuses
// classify.go and build.go directly, skipping syntax/shunting entirely
// since postfix notation carries no ambiguous operator position to
// resolve.
//
// parser.go ties the pipeline together behind the public Parser type:
// FromInfix, FromPostfix, Parse (which infers variables by retrying
// FromInfix on UndefinedSymbol), Substitute, Optimize, Cast, and
// ToString.
package parser
