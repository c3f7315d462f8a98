package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case", "John Smith", "john smith"},
		{"tokens sorted", "Smith John", "john smith"},
		{"punctuation stripped", "O'Brien, Jr.", "jr obrien"},
		{"whitespace collapsed", "  John \t  Smith ", "john smith"},
		{"single token", "Madonna", "madonna"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"punctuation only", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"John Smith", "Smith, John Q.", "", "  a  b  c ", "Élodie Dupont"}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize should be a no-op on %q", once)
	}
}

func TestNormalizeOrderInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("John Smith"), Normalize("Smith John"))
	assert.Equal(t, Normalize("a b c"), Normalize("c b a"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"john", "smith"}, Tokens("john smith"))
	assert.Empty(t, Tokens(""), "empty name must have zero tokens")
}
