package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	d := New("test").Build()

	require.Len(t, d.Quotes(), 2)
	assert.Equal(t, byte('\''), d.Quotes()[0].Open)
	assert.True(t, d.Quotes()[0].Doubling)
	assert.Equal(t, []string{"--"}, d.LineCommentPrefixes())
	assert.False(t, d.DollarQuoting())
	assert.False(t, d.SupportsDefiner())
	assert.False(t, d.EmbedsSemicolons("CREATE_TRIGGER"))
}

func TestBuilderOptions(t *testing.T) {
	d := New("test").
		AddQuoteStyle(QuoteStyle{Open: '[', Close: ']', Doubling: true}).
		AddLineComment("#").
		WithDollarQuoting().
		EmbeddedBodyTypes("CREATE_TRIGGER", "CREATE_FUNCTION").
		BlockOpeners("begin", "case").
		OptionalClauses("or", "replace").
		WithDefiner().
		Build()

	assert.Len(t, d.Quotes(), 3)
	assert.Equal(t, []string{"--", "#"}, d.LineCommentPrefixes())
	assert.True(t, d.DollarQuoting())
	assert.True(t, d.EmbedsSemicolons("CREATE_TRIGGER"))
	assert.False(t, d.EmbedsSemicolons("CREATE_TABLE"))
	assert.True(t, d.IsBlockOpener("BEGIN"))
	assert.True(t, d.IsBlockOpener("Case"))
	assert.False(t, d.IsBlockOpener("END"))
	assert.True(t, d.IsOptionalClause("REPLACE"))
	assert.False(t, d.IsOptionalClause("TEMP"))
	assert.True(t, d.SupportsDefiner())
}

func TestReplaceQuoteStyles(t *testing.T) {
	backtick := QuoteStyle{Open: '`', Close: '`', Doubling: true}
	d := New("test").ReplaceQuoteStyles(backtick).Build()

	require.Len(t, d.Quotes(), 1)
	assert.Equal(t, backtick, d.Quotes()[0])
}

func TestRegistry(t *testing.T) {
	d := New("registry-test-dialect").Build()
	Register(d)

	got, ok := Get("registry-test-dialect")
	require.True(t, ok)
	assert.Same(t, d, got)

	// Lookup is case-insensitive.
	got, ok = Get("Registry-Test-Dialect")
	require.True(t, ok)
	assert.Same(t, d, got)

	_, ok = Get("no-such-dialect")
	assert.False(t, ok)

	assert.Contains(t, List(), "registry-test-dialect")
}
