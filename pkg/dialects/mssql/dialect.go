// Package mssql provides the SQL Server dialect rule set: bracket-quoted
// identifiers and trigger/function bodies with embedded semicolons.
package mssql

import (
	"github.com/leapstack-labs/sqlident/pkg/dialect"
)

func init() {
	dialect.Register(MSSQL)
}

// MSSQL is the SQL Server dialect.
var MSSQL = dialect.New("mssql").
	AddQuoteStyle(dialect.QuoteStyle{Open: '[', Close: ']', Doubling: true}).
	EmbeddedBodyTypes("CREATE_TRIGGER", "CREATE_FUNCTION").
	BlockOpeners("BEGIN", "CASE").
	OptionalClauses("OR", "REPLACE").
	Build()
