// Package lexer implements the lookahead-of-one token scanner described in
// spec.md §4.1. It is modeled closely on evanw/esbuild's
// internal/js_lexer.Lexer: the parser calls Next() repeatedly instead of
// the lexer running to completion up front, because several tokens
// (regular expressions, the greater-than half of JSX closing tags, template
// continuations) are context-sensitive and only the parser knows which
// interpretation is in play.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// NumberKind distinguishes numeric literal variants so the parser can
// reject ones that are contextually invalid (e.g. legacy octal in strict
// mode, BigInt suffix on a non-integer).
type NumberKind uint8

const (
	NumberDecimal NumberKind = iota
	NumberHex
	NumberOctal
	NumberLegacyOctal
	NumberBinary
	NumberBigInt
)

// Lexer scans one Buffer. Identifier text is interned via Arena so that
// equal source spellings produce pointer-equal names.
type Lexer struct {
	Diags *diag.Collector
	buf   *source.Buffer
	arena *Arena

	current int
	start   int
	end     int
	codePoint rune

	Token             token.Kind
	Range             source.Range
	HasNewlineBefore  bool
	Identifier        string
	ContextualKeyword token.ContextualKeyword
	StringValue       []uint16
	RawText           string
	Number            float64
	NumberKind        NumberKind

	// rescanCloseBraceAsTemplateToken mirrors esbuild: when the parser has
	// just consumed the expression inside `${...}`, the next `}` should be
	// rescanned as the start of a template middle/tail instead of a plain
	// close-brace punctuator.
	rescanCloseBraceAsTemplateToken bool
}

// Arena interns identifier strings so that equal source text always
// produces the same Go string instance (pointer-comparable via the
// `==` on interface values holding the same backing array is not
// guaranteed in Go, so callers compare interned strings with `==` on the
// string value, which is cheap once interned because the backing bytes
// are shared).
type Arena struct {
	strings map[string]string
}

// NewArena constructs an empty identifier intern pool.
func NewArena() *Arena {
	return &Arena{strings: make(map[string]string)}
}

// Intern returns the canonical instance of s within the arena.
func (a *Arena) Intern(s string) string {
	if existing, ok := a.strings[s]; ok {
		return existing
	}
	a.strings[s] = s
	return s
}

// Checkpoint is a cheap, constant-time snapshot of lexer + diagnostic
// state, used by the parser to backtrack over ambiguous constructs
// (arrow-function heads, `<T>` type assertions vs JSX vs generic arrows).
type Checkpoint struct {
	current          int
	start            int
	end              int
	codePoint        rune
	token            token.Kind
	rng              source.Range
	hasNewlineBefore bool
	identifier       string
	contextual       token.ContextualKeyword
	diagWatermark    int
}

// New constructs a Lexer positioned before the first token and primes
// Next() so Token already holds the first token.
func New(buf *source.Buffer, diags *diag.Collector, arena *Arena) *Lexer {
	l := &Lexer{Diags: diags, buf: buf, arena: arena}
	l.step()
	l.Next()
	return l
}

func (l *Lexer) text() string { return l.buf.Text }

func (l *Lexer) step() {
	text := l.text()
	if l.current >= len(text) {
		l.codePoint = -1
		l.end = l.current
		return
	}
	c, width := utf8.DecodeRuneInString(text[l.current:])
	l.end = l.current
	l.codePoint = c
	l.current += width
}

// Save returns a checkpoint the parser can later Restore.
func (l *Lexer) Save() Checkpoint {
	return Checkpoint{
		current: l.current, start: l.start, end: l.end, codePoint: l.codePoint,
		token: l.Token, rng: l.Range, hasNewlineBefore: l.HasNewlineBefore,
		identifier: l.Identifier, contextual: l.ContextualKeyword,
		diagWatermark: l.Diags.Watermark(),
	}
}

// Restore rewinds the lexer (and truncates diagnostics queued since the
// checkpoint) to exactly the state Save captured.
func (l *Lexer) Restore(c Checkpoint) {
	l.current, l.start, l.end, l.codePoint = c.current, c.start, c.end, c.codePoint
	l.Token, l.Range, l.HasNewlineBefore = c.token, c.rng, c.hasNewlineBefore
	l.Identifier, l.ContextualKeyword = c.identifier, c.contextual
	l.Diags.Truncate(c.diagWatermark)
}

func isIdentifierStart(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c) || unicode.Is(unicode.Other_ID_Start, c)
}

func isIdentifierContinue(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c) || unicode.IsDigit(c) ||
		unicode.Is(unicode.Mn, c) || unicode.Is(unicode.Mc, c) || unicode.Is(unicode.Pc, c) ||
		unicode.Is(unicode.Other_ID_Continue, c) || c == 0x200C || c == 0x200D
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

// Next scans the next token. It never returns an error; lexical problems
// are queued as diagnostics and the lexer recovers by emitting
// SyntaxError or a synthetic delimiter, per spec.md §4.1.
func (l *Lexer) Next() {
	l.HasNewlineBefore = l.end == 0
	for {
		l.start = l.end
		switch l.codePoint {
		case -1:
			l.Token = token.EndOfFile

		case '\r', '\n', 0x2028, 0x2029:
			l.step()
			l.HasNewlineBefore = true
			continue

		case '\t', ' ':
			l.step()
			continue

		case '/':
			l.step()
			switch l.codePoint {
			case '/':
				l.step()
				l.scanLineComment()
				continue
			case '*':
				l.step()
				hadNewline := l.scanBlockComment()
				if hadNewline {
					l.HasNewlineBefore = true
				}
				continue
			case '=':
				l.step()
				l.Token = token.SlashEquals
			default:
				l.Token = token.Slash
			}

		case '(':
			l.step()
			l.Token = token.OpenParen
		case ')':
			l.step()
			l.Token = token.CloseParen
		case '[':
			l.step()
			l.Token = token.OpenBracket
		case ']':
			l.step()
			l.Token = token.CloseBracket
		case '{':
			l.step()
			l.Token = token.OpenBrace
		case '}':
			l.step()
			l.Token = token.CloseBrace
		case ',':
			l.step()
			l.Token = token.Comma
		case ':':
			l.step()
			l.Token = token.Colon
		case ';':
			l.step()
			l.Token = token.Semicolon
		case '~':
			l.step()
			l.Token = token.Tilde
		case '@':
			l.step()
			l.Token = token.At

		case '?':
			l.step()
			switch l.codePoint {
			case '?':
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.QuestionQuestionEquals
				} else {
					l.Token = token.QuestionQuestion
				}
			case '.':
				// `?.123` is `? .123` (conditional then number), not
				// optional-chaining, when followed by a digit.
				save := l.end
				l.step()
				if isDigit(l.codePoint) {
					l.current = save
					l.step()
					l.Token = token.Question
				} else {
					l.Token = token.QuestionDot
				}
			default:
				l.Token = token.Question
			}

		case '%':
			l.step()
			if l.codePoint == '=' {
				l.step()
				l.Token = token.PercentEquals
			} else {
				l.Token = token.Percent
			}

		case '&':
			l.step()
			switch l.codePoint {
			case '&':
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.AmpersandAmpersandEquals
				} else {
					l.Token = token.AmpersandAmpersand
				}
			case '=':
				l.step()
				l.Token = token.AmpersandEquals
			default:
				l.Token = token.Ampersand
			}

		case '|':
			l.step()
			switch l.codePoint {
			case '|':
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.BarBarEquals
				} else {
					l.Token = token.BarBar
				}
			case '=':
				l.step()
				l.Token = token.BarEquals
			default:
				l.Token = token.Bar
			}

		case '^':
			l.step()
			if l.codePoint == '=' {
				l.step()
				l.Token = token.CaretEquals
			} else {
				l.Token = token.Caret
			}

		case '+':
			l.step()
			switch l.codePoint {
			case '+':
				l.step()
				l.Token = token.PlusPlus
			case '=':
				l.step()
				l.Token = token.PlusEquals
			default:
				l.Token = token.Plus
			}

		case '-':
			l.step()
			switch l.codePoint {
			case '-':
				l.step()
				l.Token = token.MinusMinus
			case '=':
				l.step()
				l.Token = token.MinusEquals
			default:
				l.Token = token.Minus
			}

		case '*':
			l.step()
			switch l.codePoint {
			case '*':
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.AsteriskAsteriskEquals
				} else {
					l.Token = token.AsteriskAsterisk
				}
			case '=':
				l.step()
				l.Token = token.AsteriskEquals
			default:
				l.Token = token.Asterisk
			}

		case '=':
			l.step()
			switch l.codePoint {
			case '=':
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.EqualsEqualsEquals
				} else {
					l.Token = token.EqualsEquals
				}
			case '>':
				l.step()
				l.Token = token.EqualsGreaterThan
			default:
				l.Token = token.Equals
			}

		case '!':
			l.step()
			if l.codePoint == '=' {
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.ExclamationEqualsEquals
				} else {
					l.Token = token.ExclamationEquals
				}
			} else {
				l.Token = token.Exclamation
			}

		case '<':
			l.step()
			switch l.codePoint {
			case '<':
				l.step()
				if l.codePoint == '=' {
					l.step()
					l.Token = token.LessThanLessThanEquals
				} else {
					l.Token = token.LessThanLessThan
				}
			case '=':
				l.step()
				l.Token = token.LessThanEquals
			default:
				l.Token = token.LessThan
			}

		case '>':
			l.step()
			if l.codePoint == '=' {
				l.step()
				l.Token = token.GreaterThanEquals
			} else {
				// `>>` and `>>>` are never produced here: the parser
				// rebuilds shift operators from adjacent `>` tokens, so a
				// closer like `Array<Array<T>>` needs no splitting.
				l.Token = token.GreaterThan
			}

		case '.':
			l.step()
			if isDigit(l.codePoint) {
				l.current = l.start
				l.step()
				l.scanNumericLiteral()
			} else if l.codePoint == '.' {
				l.step()
				if l.codePoint == '.' {
					l.step()
					l.Token = token.DotDotDot
				} else {
					l.Diags.Add(diag.UnexpectedCharacter, diag.Label{Name: "character", Range: l.currentRange()})
					l.Token = token.Dot
				}
			} else {
				l.Token = token.Dot
			}

		case '\'', '"':
			l.scanStringLiteral()

		case '`':
			l.scanTemplateLiteral(token.TemplateHead, token.NoSubstitutionTemplateLiteral)

		case '#':
			l.step()
			if isIdentifierStart(l.codePoint) {
				l.scanIdentifierOrKeyword()
				l.Token = token.PrivateIdentifier
			} else {
				l.Diags.Add(diag.UnexpectedCharacter, diag.Label{Name: "character", Range: l.currentRange()})
				l.Token = token.SyntaxError
			}

		default:
			if isDigit(l.codePoint) {
				l.scanNumericLiteral()
			} else if isIdentifierStart(l.codePoint) || l.codePoint == '\\' {
				l.scanIdentifierOrKeyword()
			} else {
				l.Diags.Add(diag.UnexpectedCharacter, diag.Label{Name: "character", Range: l.currentRange()})
				l.step()
				continue
			}
		}
		break
	}
	l.Range = l.currentRange()
}

func (l *Lexer) currentRange() source.Range {
	return source.Range{Begin: uint32(l.start), End: uint32(l.end)}
}

func (l *Lexer) scanLineComment() {
	for l.codePoint != -1 && l.codePoint != '\n' && l.codePoint != '\r' && l.codePoint != 0x2028 && l.codePoint != 0x2029 {
		l.step()
	}
}

func (l *Lexer) scanBlockComment() (hadNewline bool) {
	for {
		switch l.codePoint {
		case -1:
			l.Diags.Add(diag.UnterminatedBlockComment, diag.Label{Name: "comment_start", Range: l.currentRange()})
			return hadNewline
		case '\n', '\r', 0x2028, 0x2029:
			hadNewline = true
			l.step()
		case '*':
			l.step()
			if l.codePoint == '/' {
				l.step()
				return hadNewline
			}
		default:
			l.step()
		}
	}
}

// scanIdentifierOrKeyword decodes an identifier per spec.md §4.1: unicode
// identifier-start/continue categories plus `\uXXXX`/`\u{...}` escapes,
// then classifies the *decoded* text against the keyword table — so
// `\u{63}onstructor` compares equal to `constructor`.
func (l *Lexer) scanIdentifierOrKeyword() {
	var sb strings.Builder
	hasEscape := false
	for {
		if l.codePoint == '\\' {
			hasEscape = true
			escStart := l.start
			l.step()
			if l.codePoint != 'u' {
				l.Diags.Add(diag.InvalidIdentifierEscape, diag.Label{Name: "escape", Range: source.Range{Begin: uint32(escStart), End: uint32(l.end)}})
				break
			}
			l.step()
			r, ok := l.scanUnicodeEscapeValue()
			if !ok {
				l.Diags.Add(diag.InvalidIdentifierEscape, diag.Label{Name: "escape", Range: source.Range{Begin: uint32(escStart), End: uint32(l.end)}})
				break
			}
			sb.WriteRune(r)
			continue
		}
		if sb.Len() == 0 && l.current-l.start <= 4 {
			// no separate fast path: without an escape, the name is
			// re-sliced from the raw text below
		}
		if !isIdentifierContinue(l.codePoint) {
			break
		}
		sb.WriteRune(l.codePoint)
		l.step()
	}
	name := sb.String()
	if !hasEscape {
		name = l.text()[l.start:l.end]
	}
	name = l.arena.Intern(name)
	l.Identifier = name
	l.ContextualKeyword = token.ContextualKeywords[name]
	if kw, ok := token.Keywords[name]; ok && !token.StrictModeReservedWords[name] {
		if hasEscape {
			l.Token = token.EscapedKeyword
		} else {
			l.Token = kw
		}
	} else if kw, ok := token.Keywords[name]; ok {
		_ = kw
		l.Token = token.Identifier
	} else {
		l.Token = token.Identifier
	}
}

// scanUnicodeEscapeValue scans the value after `\u` (the `u` has already
// been consumed): either `{hex+}` or exactly four hex digits.
func (l *Lexer) scanUnicodeEscapeValue() (rune, bool) {
	if l.codePoint == '{' {
		l.step()
		start := l.end
		for l.codePoint != '}' && l.codePoint != -1 {
			l.step()
		}
		if l.codePoint != '}' {
			return 0, false
		}
		v, err := strconv.ParseInt(l.text()[start:l.end], 16, 32)
		if err != nil {
			return 0, false
		}
		l.step()
		if v > unicode.MaxRune {
			return 0, false
		}
		return rune(v), true
	}
	start := l.end
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.codePoint) {
			return 0, false
		}
		l.step()
	}
	v, err := strconv.ParseInt(l.text()[start:l.end], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// scanNumericLiteral accepts decimal, hex, octal, binary, legacy octal,
// numeric separators, and a trailing BigInt `n` suffix, per spec.md §4.1.
func (l *Lexer) scanNumericLiteral() {
	start := l.start
	kind := NumberDecimal
	if l.codePoint == '0' {
		l.step()
		switch l.codePoint {
		case 'x', 'X':
			kind = NumberHex
			l.step()
			l.scanDigitsWithSeparators(isHexDigit)
		case 'o', 'O':
			kind = NumberOctal
			l.step()
			l.scanDigitsWithSeparators(func(c rune) bool { return c >= '0' && c <= '7' })
		case 'b', 'B':
			kind = NumberBinary
			l.step()
			l.scanDigitsWithSeparators(func(c rune) bool { return c == '0' || c == '1' })
		default:
			if isDigit(l.codePoint) {
				kind = NumberLegacyOctal
				l.scanDigitsWithSeparators(isDigit)
			}
		}
	} else {
		l.scanDigitsWithSeparators(isDigit)
	}
	if kind == NumberDecimal {
		if l.codePoint == '.' {
			l.step()
			l.scanDigitsWithSeparators(isDigit)
		}
		if l.codePoint == 'e' || l.codePoint == 'E' {
			l.step()
			if l.codePoint == '+' || l.codePoint == '-' {
				l.step()
			}
			l.scanDigitsWithSeparators(isDigit)
		}
	}
	if l.codePoint == 'n' {
		l.step()
		kind = NumberBigInt
	}
	raw := l.text()[start:l.end]
	l.RawText = raw
	l.NumberKind = kind
	cleaned := strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
		l.Number = n
	} else if n, err := strconv.ParseInt(cleaned, 0, 64); err == nil {
		l.Number = float64(n)
	}
	if isIdentifierStart(l.codePoint) {
		l.Diags.Add(diag.InvalidNumberAdjacentIdentifier, diag.Label{Name: "number", Range: l.currentRange()})
	}
	l.Token = token.NumericLiteral
}

func (l *Lexer) scanDigitsWithSeparators(isDigitFn func(rune) bool) {
	for isDigitFn(l.codePoint) || l.codePoint == '_' {
		l.step()
	}
}

func (l *Lexer) scanStringLiteral() {
	quote := l.codePoint
	l.step()
	var out []uint16
	for {
		switch l.codePoint {
		case -1:
			l.Diags.Add(diag.UnterminatedString, diag.Label{Name: "string_start", Range: l.currentRange()})
			l.Token = token.StringLiteral
			l.StringValue = out
			return
		case quote:
			l.step()
			l.Token = token.StringLiteral
			l.StringValue = out
			return
		case '\n', '\r':
			l.Diags.Add(diag.UnterminatedString, diag.Label{Name: "string_start", Range: l.currentRange()})
			l.Token = token.StringLiteral
			l.StringValue = out
			return
		case '\\':
			l.step()
			r, ok := l.scanEscapeSequence()
			if ok {
				out = appendRune(out, r)
			}
		default:
			out = appendRune(out, l.codePoint)
			l.step()
		}
	}
}

func appendRune(out []uint16, r rune) []uint16 {
	if r <= 0xFFFF {
		return append(out, uint16(r))
	}
	r1, r2 := utf16.EncodeRune(r)
	return append(out, uint16(r1), uint16(r2))
}

func (l *Lexer) scanEscapeSequence() (rune, bool) {
	c := l.codePoint
	switch c {
	case 'n':
		l.step()
		return '\n', true
	case 't':
		l.step()
		return '\t', true
	case 'r':
		l.step()
		return '\r', true
	case 'b':
		l.step()
		return '\b', true
	case 'f':
		l.step()
		return '\f', true
	case 'v':
		l.step()
		return '\v', true
	case '0':
		l.step()
		return 0, true
	case 'x':
		l.step()
		start := l.end
		for i := 0; i < 2; i++ {
			if !isHexDigit(l.codePoint) {
				l.Diags.Add(diag.InvalidHexEscape, diag.Label{Name: "escape", Range: l.currentRange()})
				return 0, false
			}
			l.step()
		}
		v, _ := strconv.ParseInt(l.text()[start:l.end], 16, 32)
		return rune(v), true
	case 'u':
		l.step()
		r, ok := l.scanUnicodeEscapeValue()
		if !ok {
			l.Diags.Add(diag.InvalidUnicodeEscape, diag.Label{Name: "escape", Range: l.currentRange()})
		}
		return r, ok
	case '\n', 0x2028, 0x2029:
		l.step()
		return 0, false
	case '\r':
		l.step()
		if l.codePoint == '\n' {
			l.step()
		}
		return 0, false
	case -1:
		return 0, false
	default:
		l.step()
		return c, true
	}
}

// scanTemplateLiteral scans a backtick, `${`, or the continuation after a
// rescanned `}`, producing headKind for a `${`-terminated piece or
// tailKind for a backtick-terminated piece.
func (l *Lexer) scanTemplateLiteral(headKind, tailKind token.Kind) {
	l.step()
	var out []uint16
	for {
		switch l.codePoint {
		case -1:
			l.Diags.Add(diag.UnterminatedTemplate, diag.Label{Name: "template_start", Range: l.currentRange()})
			l.Token = tailKind
			l.StringValue = out
			return
		case '`':
			l.step()
			l.Token = tailKind
			l.StringValue = out
			return
		case '$':
			save := l.current
			savedCP := l.codePoint
			l.step()
			if l.codePoint == '{' {
				l.step()
				l.Token = headKind
				l.StringValue = out
				return
			}
			l.current = save
			l.codePoint = savedCP
			out = appendRune(out, '$')
			l.step()
		case '\\':
			l.step()
			r, ok := l.scanEscapeSequence()
			if ok {
				out = appendRune(out, r)
			}
		default:
			out = appendRune(out, l.codePoint)
			l.step()
		}
	}
}

// ReparseTemplateContinuation is called by the parser right after it
// finishes the `${ expr }` interpolation: it rescans the `}` it is
// currently sitting on as the start of a template middle/tail piece.
func (l *Lexer) ReparseTemplateContinuation() {
	l.start = l.end - 1 // back up onto the '}' the lexer already stepped past
	l.current = l.start
	l.step()
	l.scanTemplateLiteral(token.TemplateMiddle, token.TemplateTail)
	l.Range = l.currentRange()
}

// ReparseAsRegexp is called by the parser when it has committed to a
// regular-expression slot (disambiguated from division by grammatical
// context, per spec.md §4.1). l.Token must currently be Slash or
// SlashEquals.
func (l *Lexer) ReparseAsRegexp() {
	l.current = l.start
	l.step() // the '/'
	l.step()
	inCharClass := false
	for {
		switch l.codePoint {
		case -1, '\n', '\r', 0x2028, 0x2029:
			l.Diags.Add(diag.UnterminatedRegexp, diag.Label{Name: "regexp_start", Range: l.currentRange()})
			l.Token = token.RegexpLiteral
			l.Range = l.currentRange()
			return
		case '\\':
			l.step()
			if l.codePoint != -1 {
				l.step()
			}
			continue
		case '[':
			inCharClass = true
		case ']':
			inCharClass = false
		case '/':
			if !inCharClass {
				l.step()
				for isIdentifierContinue(l.codePoint) {
					l.step()
				}
				l.Token = token.RegexpLiteral
				l.RawText = l.text()[l.start:l.end]
				l.Range = l.currentRange()
				return
			}
		}
		l.step()
	}
}

// ReparseGreaterThanAsOperator does nothing and has no callers: Next()
// never merges a `>` with a following `>`, so there is no `>>` or `>>>`
// token to split when closing a list like `Array<Array<T>>`.
func (l *Lexer) ReparseGreaterThanAsOperator() {
	// Shift operators are rebuilt from adjacent `>` tokens by the parser
	// (tryParseGreaterThanOperator), not here.
}
