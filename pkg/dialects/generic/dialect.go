// Package generic provides the dialect-neutral rule set. A semicolon
// always terminates the active statement; no optional clauses, block
// tracking, or definer handling apply.
package generic

import (
	"github.com/leapstack-labs/sqlident/pkg/dialect"
)

func init() {
	dialect.Register(Generic)
}

// Generic is the default dialect.
var Generic = dialect.New("generic").Build()
