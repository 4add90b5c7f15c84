package lexer

import (
	"fmt"
	"regexp"

	"github.com/conneroisu/calcexpr/internal/calcerr"
)

// Config names the six patterns a Lexer matches against, one per Kind.
// Left, Right, and Separator are literal strings (e.g. "(", ")", ","),
// not regexes; Number, Name, and Sign are regex fragments without an
// anchor or capturing group of their own.
type Config struct {
	Number    string
	Name      string
	Sign      string
	Left      string
	Right     string
	Separator string
}

// DefaultConfig returns the standard grammar markers paired with
// numberPattern, the backend-specific numeric literal regex, and the
// default name and sign patterns used across both built-in backends.
//
// Sign excludes '.' outright: Go's regexp package is RE2 and cannot
// express "a '.' not immediately followed by a digit" as a lookahead.
// scan handles a bare '.' itself (see the dot case there), so the
// regex only needs to cover every other symbolic character.
func DefaultConfig(numberPattern string) Config {
	return Config{
		Number:    numberPattern,
		Name:      `[A-Za-z_][A-Za-z_0-9]*`,
		Sign:      `[^A-Za-z0-9.(),_\s]`,
		Left:      "(",
		Right:     ")",
		Separator: ",",
	}
}

// Lexer walks source text left to right, matching one of six compiled
// patterns at each position: NUMBER, NAME, SIGN, LEFT, RIGHT, SEPARATOR.
// Whitespace between matches is skipped; any byte run that matches none
// of the six is reported as a calcerr.LexerError.
type Lexer struct {
	cfg Config
	re  *regexp.Regexp

	numberRe *regexp.Regexp
	signRe   *regexp.Regexp
}

// group names used in the combined pattern, in the order they appear.
const (
	groupNumber    = "number"
	groupName      = "name"
	groupSign      = "sign"
	groupLeft      = "left"
	groupRight     = "right"
	groupSeparator = "separator"
)

// New compiles cfg into a Lexer. It fails if any two markers collide, or
// if the combined pattern matches a bare space (which would make
// whitespace-skipping ambiguous with token boundaries).
func New(cfg Config) (*Lexer, error) {
	if cfg.Left == cfg.Right || cfg.Left == cfg.Separator || cfg.Right == cfg.Separator {
		return nil, fmt.Errorf("lexer: left, right, and separator markers must be pairwise distinct")
	}

	combined := fmt.Sprintf(
		"^(?:(?P<%s>%s)|(?P<%s>%s)|(?P<%s>%s)|(?P<%s>%s)|(?P<%s>%s)|(?P<%s>%s))",
		groupNumber, cfg.Number,
		groupName, cfg.Name,
		groupSign, cfg.Sign,
		groupLeft, regexp.QuoteMeta(cfg.Left),
		groupRight, regexp.QuoteMeta(cfg.Right),
		groupSeparator, regexp.QuoteMeta(cfg.Separator),
	)

	re, err := regexp.Compile(combined)
	if err != nil {
		return nil, fmt.Errorf("lexer: compiling combined pattern: %w", err)
	}

	if re.MatchString(" ") {
		return nil, fmt.Errorf("lexer: combined pattern must not match whitespace")
	}

	numberRe, err := regexp.Compile("^(?:" + cfg.Number + ")$")
	if err != nil {
		return nil, fmt.Errorf("lexer: compiling number pattern: %w", err)
	}

	signRe, err := regexp.Compile("^(?:" + cfg.Sign + ")+$")
	if err != nil {
		return nil, fmt.Errorf("lexer: compiling sign pattern: %w", err)
	}

	return &Lexer{cfg: cfg, re: re, numberRe: numberRe, signRe: signRe}, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scan runs the shared single-pass walk: skip whitespace, match the
// combined pattern at the current position, classify by which named
// group matched, and advance. NUMBER tokens are returned exactly as
// matched; the lexer does not itself decide whether an embedded leading
// sign belongs to the literal or to a preceding expression position.
//
// A '.' immediately followed by a digit is always left for the NUMBER
// pattern to consume (it is the start of a literal like ".5"), since
// Config.Number is tried before Config.Sign in the combined pattern. A
// '.' NOT followed by a digit matches no alternative in the combined
// pattern (Sign excludes '.' outright) and is classified here instead.
func (l *Lexer) scan(text string) ([]Token, error) {
	var tokens []Token

	pos := 0
	line := 1
	col := 1
	n := len(text)

	advance := func(s string) {
		for i := 0; i < len(s); i++ {
			if s[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += len(s)
	}

	for pos < n {
		for pos < n && isSpace(text[pos]) {
			advance(text[pos : pos+1])
		}
		if pos >= n {
			break
		}

		loc := l.re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			if text[pos] == '.' && (pos+1 >= n || !isDigit(text[pos+1])) {
				tokens = append(tokens, Token{Text: ".", Kind: SIGN, Line: line, Column: col})
				advance(".")
				continue
			}

			return nil, &calcerr.LexerError{Text: text[pos:], Reason: "no token pattern matches"}
		}

		matchText := text[pos : pos+loc[1]]
		kind, ok := l.classify(loc)
		if !ok {
			return nil, &calcerr.LexerError{Text: matchText, Reason: "matched text has no named group"}
		}

		tokens = append(tokens, Token{Text: matchText, Kind: kind, Line: line, Column: col})
		advance(matchText)
	}

	return tokens, nil
}

func (l *Lexer) classify(loc []int) (Kind, bool) {
	names := l.re.SubexpNames()
	for i, name := range names {
		if i == 0 || name == "" {
			continue
		}
		if loc[2*i] != -1 {
			switch name {
			case groupNumber:
				return NUMBER, true
			case groupName:
				return NAME, true
			case groupSign:
				return SIGN, true
			case groupLeft:
				return LEFT, true
			case groupRight:
				return RIGHT, true
			case groupSeparator:
				return SEPARATOR, true
			}
		}
	}

	return 0, false
}

// TokenizeInfix scans text for use by the infix parsing pipeline. A
// NUMBER token may come back with an embedded leading sign run (e.g.
// "-3" scanned whole out of "x+-3"); whether that sign belongs to the
// literal or splits off as its own operator/prefix/suffix symbol depends
// on the token immediately before it in the classified stream, which the
// parser's classification stage — not the lexer — has the context to
// decide.
func (l *Lexer) TokenizeInfix(text string) ([]Token, error) {
	return l.scan(text)
}

// TokenizePostfix scans text for use by the postfix parsing pipeline.
// Postfix notation has no ambiguous operator position to resolve, so
// every embedded leading sign run is split off its NUMBER token here:
// each sign run becomes its own SIGN token, immediately followed by the
// remaining digits as a NUMBER token.
func (l *Lexer) TokenizePostfix(text string) ([]Token, error) {
	raw, err := l.scan(text)
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.Kind != NUMBER {
			tokens = append(tokens, tok)
			continue
		}

		sign, rest := l.Split(tok.Text)
		if sign == "" {
			tokens = append(tokens, tok)
			continue
		}

		tokens = append(tokens, Token{Text: sign, Kind: SIGN, Line: tok.Line, Column: tok.Column})
		tokens = append(tokens, Token{Text: rest, Kind: NUMBER, Line: tok.Line, Column: tok.Column + len(sign)})
	}

	return tokens, nil
}

// IsPrefixed reports whether a matched NUMBER token's text begins with
// an embedded sign run.
func (l *Lexer) IsPrefixed(numberText string) bool {
	sign, _ := l.Split(numberText)

	return sign != ""
}

// Split divides a matched NUMBER token's text into its leading sign run
// (possibly empty) and the remaining digit run, using the same sign
// pattern the combined lexer regex matches standalone SIGN tokens with.
func (l *Lexer) Split(numberText string) (sign, rest string) {
	for i := 1; i <= len(numberText); i++ {
		if !l.signRe.MatchString(numberText[:i]) {
			return numberText[:i-1], numberText[i-1:]
		}
	}

	return numberText, ""
}
