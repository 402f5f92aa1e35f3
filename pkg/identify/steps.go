package identify

import "github.com/leapstack-labs/sqlident/pkg/token"

// acceptToken is one (type, value) pair a step will accept. Value is
// compared case-insensitively against keyword tokens.
type acceptToken struct {
	Type  token.Type
	Value string
}

// step is one stage of a statement's recognition sequence. A step with an
// empty accept list accepts any token.
type step struct {
	accept        []acceptToken
	requireBefore []token.Type
	apply         func(st *Statement, tok token.Token)

	// preCanGoToNext advances past this step before matching; nil means
	// never. postCanGoToNext advances after a match; nil means always.
	preCanGoToNext  func(tok token.Token) bool
	postCanGoToNext func(tok token.Token) bool
}

func (s step) accepts(tok token.Token) bool {
	if len(s.accept) == 0 {
		return true
	}
	for _, a := range s.accept {
		if tok.Type == a.Type && tok.Upper() == a.Value {
			return true
		}
	}
	return false
}

func (s step) expected() []string {
	out := make([]string, 0, len(s.accept))
	for _, a := range s.accept {
		out = append(out, a.Value)
	}
	return out
}

// singleKeywordSteps recognizes statements fully typed by their leading
// keyword, such as SELECT or TRUNCATE.
func singleKeywordSteps(t StatementType) []step {
	return []step{{
		accept: []acceptToken{{token.Keyword, string(t)}},
		apply: func(st *Statement, tok token.Token) {
			st.Type = t
			markStart(st, tok)
		},
	}}
}

// prefixObjectSteps recognizes two-word statements whose type is the
// leading verb joined with the object keyword, such as CREATE TABLE.
func prefixObjectSteps(verb string, objects ...string) []step {
	accepts := make([]acceptToken, len(objects))
	for i, o := range objects {
		accepts[i] = acceptToken{token.Keyword, o}
	}
	return []step{
		{
			accept: []acceptToken{{token.Keyword, verb}},
			apply: func(st *Statement, tok token.Token) {
				markStart(st, tok)
			},
		},
		{
			accept:        accepts,
			requireBefore: []token.Type{token.Whitespace},
			apply: func(st *Statement, tok token.Token) {
				st.Type = StatementType(verb + "_" + tok.Upper())
			},
		},
	}
}

// unknownSteps accepts anything. Used in permissive mode for statements
// that open with no recognized keyword.
var unknownSteps = []step{{
	apply: func(st *Statement, tok token.Token) {
		st.Type = UnknownType
		markStart(st, tok)
	},
}}

func markStart(st *Statement, tok token.Token) {
	if st.Start < 0 {
		st.Start = tok.Start
	}
}

// stepTable maps a statement's leading keyword to its recognition steps.
var stepTable = map[string][]step{
	"SELECT":   singleKeywordSteps(Select),
	"INSERT":   singleKeywordSteps(Insert),
	"UPDATE":   singleKeywordSteps(Update),
	"DELETE":   singleKeywordSteps(Delete),
	"TRUNCATE": singleKeywordSteps(Truncate),
	"CREATE":   prefixObjectSteps("CREATE", "TABLE", "DATABASE", "TRIGGER", "FUNCTION"),
	"DROP":     prefixObjectSteps("DROP", "TABLE", "DATABASE"),
}
