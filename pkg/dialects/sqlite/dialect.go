// Package sqlite provides the SQLite dialect rule set. SQLite accepts
// backtick and bracket identifier quoting alongside the standard quotes,
// and trigger bodies embed semicolons between BEGIN and END.
package sqlite

import (
	"github.com/leapstack-labs/sqlident/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
}

// SQLite is the SQLite dialect.
var SQLite = dialect.New("sqlite").
	AddQuoteStyle(dialect.QuoteStyle{Open: '`', Close: '`', Doubling: true}).
	AddQuoteStyle(dialect.QuoteStyle{Open: '[', Close: ']', Doubling: true}).
	EmbeddedBodyTypes("CREATE_TRIGGER", "CREATE_FUNCTION").
	BlockOpeners("BEGIN", "CASE").
	OptionalClauses("TEMP", "TEMPORARY").
	Build()
