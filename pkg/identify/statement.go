package identify

import "github.com/leapstack-labs/sqlident/pkg/token"

// StatementType classifies the kind of a SQL statement.
type StatementType string

const (
	Select         StatementType = "SELECT"
	Insert         StatementType = "INSERT"
	Update         StatementType = "UPDATE"
	Delete         StatementType = "DELETE"
	Truncate       StatementType = "TRUNCATE"
	CreateTable    StatementType = "CREATE_TABLE"
	CreateDatabase StatementType = "CREATE_DATABASE"
	CreateTrigger  StatementType = "CREATE_TRIGGER"
	CreateFunction StatementType = "CREATE_FUNCTION"
	DropTable      StatementType = "DROP_TABLE"
	DropDatabase   StatementType = "DROP_DATABASE"
	UnknownType    StatementType = "UNKNOWN"
)

// ExecutionType classifies a statement's coarse effect.
type ExecutionType string

const (
	Listing          ExecutionType = "LISTING"
	Modification     ExecutionType = "MODIFICATION"
	UnknownExecution ExecutionType = "UNKNOWN"
)

// executionTypes maps statement types to their execution behavior.
var executionTypes = map[StatementType]ExecutionType{
	Select:         Listing,
	Insert:         Modification,
	Update:         Modification,
	Delete:         Modification,
	Truncate:       Modification,
	CreateTable:    Modification,
	CreateDatabase: Modification,
	CreateTrigger:  Modification,
	CreateFunction: Modification,
	DropTable:      Modification,
	DropDatabase:   Modification,
}

// ExecutionTypeOf returns the execution behavior for a statement type,
// defaulting to UNKNOWN for any type not in the table.
func ExecutionTypeOf(t StatementType) ExecutionType {
	if e, ok := executionTypes[t]; ok {
		return e
	}
	return UnknownExecution
}

// Statement is one identified statement within the input. A statement is
// provisional until Type is assigned and complete once EndStatement is set.
// Offsets are end-exclusive byte offsets into the original input.
type Statement struct {
	Start         int           `json:"start"`
	End           int           `json:"end"`
	Type          StatementType `json:"type,omitempty"`
	ExecutionType ExecutionType `json:"executionType,omitempty"`

	// EndStatement is the terminating marker (";"), or empty for a
	// statement closed implicitly by end of input.
	EndStatement string `json:"endStatement,omitempty"`
}

// ParseResult is the full outcome of one Parse call: the ordered,
// non-overlapping statements plus the complete token stream.
type ParseResult struct {
	Type   string        `json:"type"` // always "QUERY"
	Start  int           `json:"start"`
	End    int           `json:"end"`
	Body   []Statement   `json:"body"`
	Tokens []token.Token `json:"tokens"`
}

// Result is the thin public projection returned by Identify.
type Result struct {
	Start         int           `json:"start"`
	End           int           `json:"end"`
	Text          string        `json:"text"`
	Type          StatementType `json:"type"`
	ExecutionType ExecutionType `json:"executionType"`
}
