package identify

import (
	"log/slog"

	"github.com/leapstack-labs/sqlident/pkg/dialect"
	"github.com/leapstack-labs/sqlident/pkg/token"
)

// definerState tracks the MySQL DEFINER clause, which may appear between
// CREATE and the object keyword and must be skipped transparently.
type definerState int

const (
	definerInactive definerState = iota
	definerSawKeyword
	definerSawEquals
	definerConsuming
)

// classifier drives one statement through its recognition steps, tracking
// block depth and clause state so the splitter stays a dumb loop.
type classifier struct {
	stmt    *Statement
	steps   []step
	stepIdx int
	d       *dialect.Dialect
	strict  bool
	logger  *slog.Logger

	prev       *token.Token
	prevNonWS  *token.Token
	openBlocks int
	canEnd     bool
	definer    definerState
}

// newClassifier picks the step sequence from the statement's leading
// token. In strict mode an unrecognized opener is an error; otherwise the
// statement is classified UNKNOWN.
func newClassifier(lead token.Token, d *dialect.Dialect, strict bool, logger *slog.Logger) (*classifier, error) {
	steps := unknownSteps
	if lead.Type == token.Keyword {
		if s, ok := stepTable[lead.Upper()]; ok {
			steps = s
		} else if strict {
			return nil, &UnrecognizedStatementError{Token: lead}
		}
	} else if strict {
		return nil, &UnrecognizedStatementError{Token: lead}
	}
	return &classifier{
		stmt:   &Statement{Start: lead.Start, End: -1},
		steps:  steps,
		d:      d,
		strict: strict,
		logger: logger,
	}, nil
}

// terminated reports whether the statement has been sealed.
func (c *classifier) terminated() bool {
	return c.stmt.EndStatement != ""
}

// feed consumes one token. The handling order matters: termination first,
// then block depth, whitespace, inertness once typed, optional clauses,
// the definer machine, and finally step matching.
func (c *classifier) feed(tok token.Token) error {
	if c.terminated() {
		return ErrStatementTerminated
	}

	embeds := c.stmt.Type != "" && c.d.EmbedsSemicolons(string(c.stmt.Type))

	if tok.Type == token.Semicolon {
		if !embeds || c.canEnd {
			c.stmt.EndStatement = tok.Value
			if c.logger != nil {
				c.logger.Debug("statement terminated",
					"type", c.stmt.Type, "start", c.stmt.Start, "end", tok.End)
			}
		}
		// Inside an open body the semicolon belongs to a nested statement.
		c.setPrev(tok)
		return nil
	}

	if embeds && tok.Type == token.Keyword {
		upper := tok.Upper()
		if upper == "END" && c.openBlocks > 0 {
			c.openBlocks--
			if c.openBlocks == 0 {
				c.canEnd = true
			}
			c.setPrev(tok)
			return nil
		}
		// END IF and END LOOP close a block; the trailing word must not
		// reopen one.
		if c.d.IsBlockOpener(upper) && !c.prevNonWSIs("END") {
			c.openBlocks++
			c.canEnd = false
			c.setPrev(tok)
			return nil
		}
	}

	if tok.Type == token.Whitespace {
		c.setPrev(tok)
		return nil
	}

	// A typed statement only watches for its terminator.
	if c.stmt.Type != "" {
		c.setPrev(tok)
		return nil
	}

	if tok.Type == token.Keyword && c.d.IsOptionalClause(tok.Upper()) {
		c.setPrev(tok)
		return nil
	}

	if c.d.SupportsDefiner() {
		consumed, err := c.feedDefiner(tok)
		if err != nil || consumed {
			return err
		}
	}

	return c.matchStep(tok)
}

// feedDefiner advances the DEFINER clause machine. It reports whether the
// token was consumed by the clause.
func (c *classifier) feedDefiner(tok token.Token) (bool, error) {
	switch c.definer {
	case definerInactive:
		if tok.Type == token.Keyword && tok.Upper() == "DEFINER" {
			c.definer = definerSawKeyword
			c.setPrev(tok)
			return true, nil
		}
	case definerSawKeyword:
		if tok.Value == "=" {
			c.definer = definerSawEquals
			c.setPrev(tok)
			return true, nil
		}
		c.definer = definerInactive
	case definerSawEquals:
		// First token of the principal, e.g. the user part of user@host.
		c.definer = definerConsuming
		c.setPrev(tok)
		return true, nil
	case definerConsuming:
		// The principal is a contiguous run; a whitespace gap ends it.
		if c.prev != nil && c.prev.Type != token.Whitespace {
			c.setPrev(tok)
			return true, nil
		}
		c.definer = definerInactive
	}
	return false, nil
}

func (c *classifier) matchStep(tok token.Token) error {
	st := c.steps[c.stepIdx]
	if st.preCanGoToNext != nil && st.preCanGoToNext(tok) {
		c.stepIdx++
		st = c.steps[c.stepIdx]
	}

	if len(st.requireBefore) > 0 {
		ok := false
		for _, t := range st.requireBefore {
			if c.prev != nil && c.prev.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return &UnexpectedTokenError{
				Expected: []string{string(token.Whitespace)},
				Token:    tok,
				Step:     c.stepIdx,
			}
		}
	}

	if !st.accepts(tok) && c.strict {
		return &UnexpectedTokenError{Expected: st.expected(), Token: tok, Step: c.stepIdx}
	}

	st.apply(c.stmt, tok)
	c.stmt.ExecutionType = ExecutionTypeOf(c.stmt.Type)
	if st.postCanGoToNext == nil || st.postCanGoToNext(tok) {
		c.stepIdx++
	}
	if c.logger != nil && c.stmt.Type != "" {
		c.logger.Debug("statement classified",
			"type", c.stmt.Type, "executionType", c.stmt.ExecutionType, "start", c.stmt.Start)
	}
	c.setPrev(tok)
	return nil
}

func (c *classifier) setPrev(tok token.Token) {
	t := tok
	c.prev = &t
	if t.Type != token.Whitespace {
		c.prevNonWS = &t
	}
}

func (c *classifier) prevNonWSIs(upper string) bool {
	return c.prevNonWS != nil && c.prevNonWS.Upper() == upper
}
