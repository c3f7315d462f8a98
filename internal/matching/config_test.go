package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		score    float64
		expected MatchType
	}{
		{"well above exact", 0.99, MatchTypeExact},
		{"exact boundary inclusive", 0.9, MatchTypeExact},
		{"just below exact", 0.8999, MatchTypePossible},
		{"possible boundary inclusive", 0.75, MatchTypePossible},
		{"just below possible", 0.7499, MatchTypeNone},
		{"zero", 0, MatchTypeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.Classify(tt.score))
		})
	}
}

func TestMatchTypeIsValid(t *testing.T) {
	assert.True(t, MatchTypeExact.IsValid())
	assert.True(t, MatchTypePossible.IsValid())
	assert.True(t, MatchTypeNone.IsValid())
	assert.False(t, MatchType("MAYBE").IsValid())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.CharWeight = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.PossibleThreshold = 0.95
	assert.Error(t, cfg.Validate())
}

func TestTokenThresholdIndependentFromExactThreshold(t *testing.T) {
	// The two defaults coincide numerically but are separate knobs.
	cfg := DefaultConfig()
	cfg.TokenMatchThreshold = 0.85
	assert.NoError(t, cfg.Validate())
	assert.InDelta(t, DefaultExactThreshold, cfg.ExactThreshold, 0.0001)

	// A looser token bound raises the composite without touching the tiers.
	loose := cfg.Composite("jon smyth", "john smith")
	strict := DefaultConfig().Composite("jon smyth", "john smith")
	assert.Greater(t, loose, strict)
}
