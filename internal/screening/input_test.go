package screening

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputDocumentDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected NameList
		wantErr  bool
	}{
		{"single string", `{"fullName": "Jon Smyth"}`, NameList{"Jon Smyth"}, false},
		{"array of strings", `{"fullName": ["Jon Smyth", "J. Smith"]}`, NameList{"Jon Smyth", "J. Smith"}, false},
		{"empty array", `{"fullName": []}`, NameList{}, false},
		{"field absent", `{}`, nil, false},
		{"number", `{"fullName": 42}`, nil, true},
		{"object", `{"fullName": {"first": "Jon"}}`, nil, true},
		{"mixed array", `{"fullName": ["Jon", 42]}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc InputDocument
			err := json.Unmarshal([]byte(tt.body), &doc)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSchema)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc.FullName)
		})
	}
}
