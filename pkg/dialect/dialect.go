// Package dialect defines SQL dialect rule sets for statement
// identification.
//
// A Dialect bundles the lexical quirks the scanner needs (quote styles,
// comment prefixes, dollar quoting) with the termination quirks the
// classifier needs (which statement types may embed semicolons in their
// body, which keywords open nested blocks, which clause words are skipped
// between CREATE and the object keyword). Concrete dialects are registered
// from pkg/dialects/*/ packages.
package dialect

import "strings"

// QuoteStyle describes one kind of quoted literal the scanner recognizes.
type QuoteStyle struct {
	Open  byte // opening quote character
	Close byte // closing quote character

	// Doubling means a doubled Close character inside the literal is an
	// escape ('it''s'). Backslash means \x escapes the next character
	// (MySQL strings).
	Doubling  bool
	Backslash bool
}

// Dialect represents one SQL dialect's identification rules.
type Dialect struct {
	Name string

	// Lexical rules
	quotes              []QuoteStyle
	lineCommentPrefixes []string
	dollarQuotes        bool

	// Termination rules
	embeddedBodyTypes map[string]struct{} // statement types whose body may contain semicolons
	blockOpeners      map[string]struct{} // keywords that open a nested block inside such a body
	optionalClauses   map[string]struct{} // keywords skipped before the statement type is known
	supportsDefiner   bool                // MySQL DEFINER = principal clause
}

// Quotes returns the quote styles the scanner should recognize.
func (d *Dialect) Quotes() []QuoteStyle {
	return d.quotes
}

// LineCommentPrefixes returns the line comment introducers ("--" always,
// plus dialect extras such as MySQL's "#").
func (d *Dialect) LineCommentPrefixes() []string {
	return d.lineCommentPrefixes
}

// DollarQuoting reports whether $tag$ ... $tag$ string literals are
// recognized (Postgres).
func (d *Dialect) DollarQuoting() bool {
	return d.dollarQuotes
}

// EmbedsSemicolons reports whether statements of the given type may carry
// semicolons inside their body. For such statements a semicolon only
// terminates once the closing END has been seen.
func (d *Dialect) EmbedsSemicolons(statementType string) bool {
	_, ok := d.embeddedBodyTypes[statementType]
	return ok
}

// IsBlockOpener reports whether the keyword opens a nested block inside a
// trigger or function body. Case-insensitive.
func (d *Dialect) IsBlockOpener(word string) bool {
	_, ok := d.blockOpeners[strings.ToUpper(word)]
	return ok
}

// IsOptionalClause reports whether the keyword is an optional clause word
// that appears before the statement type is known and must be skipped
// (OR, REPLACE, TEMP, ...). Case-insensitive.
func (d *Dialect) IsOptionalClause(word string) bool {
	_, ok := d.optionalClauses[strings.ToUpper(word)]
	return ok
}

// SupportsDefiner reports whether the dialect allows a DEFINER = principal
// clause between CREATE and the object keyword.
func (d *Dialect) SupportsDefiner() bool {
	return d.supportsDefiner
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// New creates a new dialect builder with the given name. Every dialect
// starts with single- and double-quoted literals (doubling escape) and
// "--" line comments; builder methods add the rest.
func New(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name: name,
			quotes: []QuoteStyle{
				{Open: '\'', Close: '\'', Doubling: true},
				{Open: '"', Close: '"', Doubling: true},
			},
			lineCommentPrefixes: []string{"--"},
			embeddedBodyTypes:   make(map[string]struct{}),
			blockOpeners:        make(map[string]struct{}),
			optionalClauses:     make(map[string]struct{}),
		},
	}
}

// AddQuoteStyle registers an extra quoted-literal style.
func (b *Builder) AddQuoteStyle(q QuoteStyle) *Builder {
	b.dialect.quotes = append(b.dialect.quotes, q)
	return b
}

// ReplaceQuoteStyles replaces the default quote styles entirely.
func (b *Builder) ReplaceQuoteStyles(qs ...QuoteStyle) *Builder {
	b.dialect.quotes = qs
	return b
}

// AddLineComment registers an extra line comment prefix.
func (b *Builder) AddLineComment(prefix string) *Builder {
	b.dialect.lineCommentPrefixes = append(b.dialect.lineCommentPrefixes, prefix)
	return b
}

// WithDollarQuoting enables Postgres-style dollar-quoted strings.
func (b *Builder) WithDollarQuoting() *Builder {
	b.dialect.dollarQuotes = true
	return b
}

// EmbeddedBodyTypes declares statement types whose bodies may embed
// semicolons (typically CREATE_TRIGGER and CREATE_FUNCTION).
func (b *Builder) EmbeddedBodyTypes(types ...string) *Builder {
	for _, t := range types {
		b.dialect.embeddedBodyTypes[t] = struct{}{}
	}
	return b
}

// BlockOpeners declares the keywords that open a nested block inside an
// embedded body. Each opener is balanced by an END.
func (b *Builder) BlockOpeners(words ...string) *Builder {
	for _, w := range words {
		b.dialect.blockOpeners[strings.ToUpper(w)] = struct{}{}
	}
	return b
}

// OptionalClauses declares keywords skipped before the statement type is
// assigned (OR REPLACE, TEMP, ...).
func (b *Builder) OptionalClauses(words ...string) *Builder {
	for _, w := range words {
		b.dialect.optionalClauses[strings.ToUpper(w)] = struct{}{}
	}
	return b
}

// WithDefiner enables recognition of the DEFINER = principal clause.
func (b *Builder) WithDefiner() *Builder {
	b.dialect.supportsDefiner = true
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
