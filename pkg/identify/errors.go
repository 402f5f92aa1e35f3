package identify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlident/pkg/token"
)

// ErrStatementTerminated reports a token fed to a statement that has
// already been sealed. It indicates a splitter bug, not bad input.
var ErrStatementTerminated = errors.New("token fed to a terminated statement")

// UnknownDialectError is returned when the requested dialect name has no
// registered rule set.
type UnknownDialectError struct {
	Name string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q", e.Name)
}

// UnrecognizedStatementError is returned in strict mode when a statement
// begins with a token that matches no known statement opener.
type UnrecognizedStatementError struct {
	Token token.Token
}

func (e *UnrecognizedStatementError) Error() string {
	return fmt.Sprintf("unrecognized statement start %q at offset %d", e.Token.Value, e.Token.Start)
}

// UnexpectedTokenError is returned when a token violates the current
// step's accept list or its required predecessor constraint.
type UnexpectedTokenError struct {
	Expected []string
	Token    token.Token
	Step     int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %s %q at offset %d",
		strings.Join(e.Expected, " or "), e.Token.Type, e.Token.Value, e.Token.Start)
}
