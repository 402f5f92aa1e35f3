// Package scanner turns raw SQL text into a stream of lexical tokens.
//
// The scanner is pull-based: each call to Next produces exactly one token
// starting at the cursor and advances the cursor past it. It never fails;
// unterminated strings and block comments produce a well-formed token
// spanning to the end of input. Tokens are contiguous and exhaustive, so
// the concatenation of all token values reconstructs the input exactly.
package scanner

import (
	"strings"

	"github.com/leapstack-labs/sqlident/pkg/dialect"
	"github.com/leapstack-labs/sqlident/pkg/token"
)

// Scanner tokenizes SQL input for one dialect.
type Scanner struct {
	input string
	pos   int // current position in input
	d     *dialect.Dialect
}

// New creates a Scanner over input using the given dialect's lexical rules.
func New(input string, d *dialect.Dialect) *Scanner {
	return &Scanner{input: input, d: d}
}

// Pos returns the current cursor position.
func (s *Scanner) Pos() int {
	return s.pos
}

// Next returns the next token, or ok=false when the input is exhausted.
// Recognition order: whitespace run, line comment, block comment, quoted
// string, semicolon, reserved word, otherwise unknown.
func (s *Scanner) Next() (tok token.Token, ok bool) {
	if s.pos >= len(s.input) {
		return token.Token{}, false
	}

	start := s.pos
	ch := s.input[s.pos]

	switch {
	case isSpace(ch):
		s.scanWhitespace()
		return s.emit(token.Whitespace, start), true
	case s.atLineComment():
		s.scanToLineEnd()
		return s.emit(token.CommentInline, start), true
	case strings.HasPrefix(s.input[s.pos:], "/*"):
		s.scanBlockComment()
		return s.emit(token.CommentBlock, start), true
	case s.d.DollarQuoting() && ch == '$':
		if s.scanDollarQuoted() {
			return s.emit(token.String, start), true
		}
		s.pos++
		return s.emit(token.Unknown, start), true
	case ch == ';':
		s.pos++
		return s.emit(token.Semicolon, start), true
	}

	for _, q := range s.d.Quotes() {
		if ch == q.Open {
			s.scanQuoted(q)
			return s.emit(token.String, start), true
		}
	}

	if isWordStart(ch) {
		word := s.scanWord()
		if token.IsReserved(word) {
			return s.emit(token.Keyword, start), true
		}
		// Not a reserved word: the whole word is one unknown token, so an
		// identifier containing a keyword substring is never split.
		return s.emit(token.Unknown, start), true
	}

	s.pos++
	return s.emit(token.Unknown, start), true
}

// emit builds a token from start to the current cursor.
func (s *Scanner) emit(t token.Type, start int) token.Token {
	return token.Token{
		Type:  t,
		Value: s.input[start:s.pos],
		Start: start,
		End:   s.pos,
	}
}

func (s *Scanner) atLineComment() bool {
	rest := s.input[s.pos:]
	for _, prefix := range s.d.LineCommentPrefixes() {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	return false
}

func (s *Scanner) scanWhitespace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

// scanToLineEnd consumes up to, but not including, the newline. The
// newline itself belongs to the following whitespace token.
func (s *Scanner) scanToLineEnd() {
	for s.pos < len(s.input) && s.input[s.pos] != '\n' {
		s.pos++
	}
}

// scanBlockComment consumes a /* ... */ comment, or everything to the end
// of input when the closer is missing.
func (s *Scanner) scanBlockComment() {
	s.pos += 2 // skip /*
	for s.pos < len(s.input) {
		if s.input[s.pos] == '*' && s.pos+1 < len(s.input) && s.input[s.pos+1] == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

// scanQuoted consumes a quoted literal according to the style's escape
// rules, or everything to the end of input when unterminated.
func (s *Scanner) scanQuoted(q dialect.QuoteStyle) {
	s.pos++ // skip opening quote
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if q.Backslash && ch == '\\' && s.pos+1 < len(s.input) {
			s.pos += 2
			continue
		}
		if ch == q.Close {
			if q.Doubling && s.pos+1 < len(s.input) && s.input[s.pos+1] == q.Close {
				s.pos += 2
				continue
			}
			s.pos++
			return
		}
		s.pos++
	}
}

// scanDollarQuoted consumes a $tag$ ... $tag$ literal. Returns false,
// leaving the cursor untouched, when the cursor is not at a valid opener.
func (s *Scanner) scanDollarQuoted() bool {
	rest := s.input[s.pos:]
	end := strings.IndexByte(rest[1:], '$')
	if end < 0 {
		return false
	}
	delim := rest[:end+2] // "$tag$" including both dollar signs
	for _, c := range []byte(delim[1 : len(delim)-1]) {
		if !isWordChar(c) {
			return false
		}
	}
	body := strings.Index(rest[len(delim):], delim)
	if body < 0 {
		s.pos = len(s.input) // unterminated literal runs to end of input
		return true
	}
	s.pos += len(delim) + body + len(delim)
	return true
}

// scanWord consumes a maximal identifier/word and returns it.
func (s *Scanner) scanWord() string {
	start := s.pos
	for s.pos < len(s.input) && isWordChar(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// Tokenize returns all tokens of input under the given dialect.
func Tokenize(input string, d *dialect.Dialect) []token.Token {
	s := New(input, d)
	var tokens []token.Token
	for {
		tok, ok := s.Next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isWordStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWordChar(ch byte) bool {
	return isWordStart(ch) || (ch >= '0' && ch <= '9')
}
