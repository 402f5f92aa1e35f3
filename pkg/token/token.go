// Package token defines the lexical token types produced by the scanner.
//
// The token set is deliberately small: statement identification needs to
// find statement boundaries and a fixed set of leading keywords, nothing
// more. Everything the scanner cannot name is an "unknown" token.
package token

import "strings"

// Type represents the kind of a lexical token.
type Type string

const (
	Whitespace    Type = "whitespace"
	CommentInline Type = "comment-inline"
	CommentBlock  Type = "comment-block"
	String        Type = "string"
	Semicolon     Type = "semicolon"
	Keyword       Type = "keyword"
	Unknown       Type = "unknown"
)

// Token represents a lexical token with its span in the original input.
// Offsets are byte offsets, end-exclusive: Value == input[Start:End].
// The scanner guarantees tokens are contiguous and exhaustive, so
// concatenating all token values in order reconstructs the input exactly.
type Token struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// reserved maps lowercase reserved words to their presence in the set.
// Only words the classifier has an opinion about are reserved: statement
// leaders, object kinds, block delimiters, and skippable clause words.
var reserved = map[string]struct{}{
	"select":    {},
	"insert":    {},
	"update":    {},
	"delete":    {},
	"create":    {},
	"drop":      {},
	"truncate":  {},
	"table":     {},
	"database":  {},
	"trigger":   {},
	"function":  {},
	"begin":     {},
	"end":       {},
	"if":        {},
	"loop":      {},
	"case":      {},
	"or":        {},
	"replace":   {},
	"definer":   {},
	"temp":      {},
	"temporary": {},
}

// IsReserved reports whether word is a reserved word, case-insensitively.
func IsReserved(word string) bool {
	_, ok := reserved[strings.ToLower(word)]
	return ok
}

// Upper returns the token's value folded to upper case. Keyword comparisons
// throughout the classifier are case-insensitive.
func (t Token) Upper() string {
	return strings.ToUpper(t.Value)
}
