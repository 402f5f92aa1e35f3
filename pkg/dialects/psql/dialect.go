// Package psql provides the PostgreSQL dialect rule set. Function and
// trigger bodies embed semicolons, so statement termination is deferred
// until the block depth opened by BEGIN/CASE/IF/LOOP returns to zero.
// Dollar-quoted strings keep body semicolons out of the token stream's
// semicolon type entirely.
package psql

import (
	"github.com/leapstack-labs/sqlident/pkg/dialect"
)

func init() {
	dialect.Register(Postgres)
}

// Postgres is the PostgreSQL dialect.
var Postgres = dialect.New("psql").
	WithDollarQuoting().
	EmbeddedBodyTypes("CREATE_TRIGGER", "CREATE_FUNCTION").
	BlockOpeners("BEGIN", "CASE", "IF", "LOOP").
	OptionalClauses("OR", "REPLACE", "TEMP", "TEMPORARY").
	Build()
