package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want Mode
	}{
		{ModeAuto, ModeText},
		{Mode(""), ModeText},
		{ModeText, ModeText},
		{ModeJSON, ModeJSON},
	}

	for _, tt := range tests {
		r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode())
	}
}

func TestStylesArePlainWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeText)

	// Writing to a buffer must not emit ANSI escapes.
	r.Println(r.Styles().Bold.Render("plain"))
	assert.Equal(t, "plain\n", out.String())
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &bytes.Buffer{}, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"n": 1}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 1, decoded["n"])
}

func TestSuccessAndErrorf(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeText)

	r.Success("done")
	r.Errorf("failed: %s", "boom")

	assert.Contains(t, out.String(), "done")
	assert.Contains(t, errOut.String(), "failed: boom")
}
