package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReserved(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"select", true},
		{"SELECT", true},
		{"Select", true},
		{"truncate", true},
		{"definer", true},
		{"end", true},
		{"selection", false}, // keyword prefix is not a keyword
		{"users", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReserved(tt.word))
		})
	}
}

func TestTokenUpper(t *testing.T) {
	tok := Token{Type: Keyword, Value: "create", Start: 0, End: 6}
	assert.Equal(t, "CREATE", tok.Upper())
}
