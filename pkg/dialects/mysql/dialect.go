// Package mysql provides the MySQL dialect rule set: backtick-quoted
// identifiers, backslash string escapes, # line comments, OR REPLACE
// skipping, and the DEFINER = principal clause.
package mysql

import (
	"github.com/leapstack-labs/sqlident/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
}

// MySQL is the MySQL dialect.
var MySQL = dialect.New("mysql").
	ReplaceQuoteStyles(
		dialect.QuoteStyle{Open: '\'', Close: '\'', Doubling: true, Backslash: true},
		dialect.QuoteStyle{Open: '"', Close: '"', Doubling: true, Backslash: true},
		dialect.QuoteStyle{Open: '`', Close: '`', Doubling: true},
	).
	AddLineComment("#").
	OptionalClauses("OR", "REPLACE").
	WithDefiner().
	Build()
