// Package identify splits SQL scripts into statements and classifies each
// one by type and execution behavior. It never interprets statement
// bodies; the scanner's token boundaries decide everything.
package identify

import (
	"log/slog"

	"github.com/leapstack-labs/sqlident/pkg/dialect"
	"github.com/leapstack-labs/sqlident/pkg/scanner"
	"github.com/leapstack-labs/sqlident/pkg/token"

	// Register the built-in dialect rule sets.
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/generic"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/psql"
	_ "github.com/leapstack-labs/sqlident/pkg/dialects/sqlite"
)

type options struct {
	dialect string
	strict  bool
	logger  *slog.Logger
}

// Option configures Parse and Identify.
type Option func(*options)

// WithDialect selects the dialect rule set by name. Defaults to "generic".
func WithDialect(name string) Option {
	return func(o *options) { o.dialect = name }
}

// WithStrict controls whether unrecognized statements and malformed
// openers are errors (true, the default) or classified UNKNOWN.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithLogger installs a trace logger. Token and statement events are
// emitted at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Parse scans the input and returns every statement with its token
// stream. Offsets in the result are end-exclusive byte offsets into input.
func Parse(input string, opts ...Option) (*ParseResult, error) {
	o := options{dialect: "generic", strict: true}
	for _, opt := range opts {
		opt(&o)
	}

	d, ok := dialect.Get(o.dialect)
	if !ok {
		return nil, &UnknownDialectError{Name: o.dialect}
	}

	res := &ParseResult{
		Type:   "QUERY",
		Start:  0,
		End:    len(input),
		Body:   []Statement{},
		Tokens: []token.Token{},
	}

	sc := scanner.New(input, d)
	var cl *classifier
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		res.Tokens = append(res.Tokens, tok)
		if o.logger != nil {
			o.logger.Debug("token", "type", tok.Type, "start", tok.Start, "end", tok.End)
		}

		if cl == nil {
			if !opensStatement(tok) {
				continue
			}
			var err error
			cl, err = newClassifier(tok, d, o.strict, o.logger)
			if err != nil {
				return nil, err
			}
		}

		if err := cl.feed(tok); err != nil {
			return nil, err
		}
		if cl.terminated() {
			res.Body = append(res.Body, sealStatement(cl.stmt, tok.End))
			cl = nil
		}
	}

	// End of input seals an open statement without a terminator marker.
	if cl != nil {
		res.Body = append(res.Body, sealStatement(cl.stmt, res.End))
	}

	return res, nil
}

// sealStatement fixes the end offset and backfills the type of a
// statement cut short before classification finished, such as "CREATE;".
func sealStatement(st *Statement, end int) Statement {
	st.End = end
	if st.Type == "" {
		st.Type = UnknownType
		st.ExecutionType = ExecutionTypeOf(UnknownType)
	}
	return *st
}

// opensStatement reports whether a token begins a new statement.
// Whitespace, comments, and stray semicolons between statements belong to
// no statement at all.
func opensStatement(tok token.Token) bool {
	switch tok.Type {
	case token.Whitespace, token.CommentInline, token.CommentBlock, token.Semicolon:
		return false
	}
	return true
}

// Identify is the convenience surface: it parses the input and projects
// each statement together with its source text.
func Identify(input string, opts ...Option) ([]Result, error) {
	parsed, err := Parse(input, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(parsed.Body))
	for _, st := range parsed.Body {
		out = append(out, Result{
			Start:         st.Start,
			End:           st.End,
			Text:          input[st.Start:st.End],
			Type:          st.Type,
			ExecutionType: st.ExecutionType,
		})
	}
	return out, nil
}
