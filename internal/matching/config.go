package matching

import "fmt"

// Default weights and thresholds. All of them are auditable knobs, not magic
// numbers: the token acceptance bound and the exact-match classification bound
// share a default value but are independent controls.
const (
	DefaultCharWeight          = 0.9
	DefaultTokenWeight         = 0.1
	DefaultTokenMatchThreshold = 0.9
	DefaultExactThreshold      = 0.9
	DefaultPossibleThreshold   = 0.75
)

// Config defines the weights and thresholds for composite name scoring.
type Config struct {
	// CharWeight and TokenWeight blend whole-string Jaro-Winkler with token
	// overlap into the composite score.
	CharWeight  float64
	TokenWeight float64

	// TokenMatchThreshold is the minimum per-token Jaro-Winkler score for a
	// token to count as overlapping.
	TokenMatchThreshold float64

	// ExactThreshold and PossibleThreshold bound the classification tiers,
	// inclusive on the lower end.
	ExactThreshold    float64
	PossibleThreshold float64
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		CharWeight:          DefaultCharWeight,
		TokenWeight:         DefaultTokenWeight,
		TokenMatchThreshold: DefaultTokenMatchThreshold,
		ExactThreshold:      DefaultExactThreshold,
		PossibleThreshold:   DefaultPossibleThreshold,
	}
}

// Validate checks that weights and thresholds are coherent.
func (c Config) Validate() error {
	for _, bound := range []struct {
		name  string
		value float64
	}{
		{"char weight", c.CharWeight},
		{"token weight", c.TokenWeight},
		{"token match threshold", c.TokenMatchThreshold},
		{"exact threshold", c.ExactThreshold},
		{"possible threshold", c.PossibleThreshold},
	} {
		if bound.value < 0 || bound.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", bound.name, bound.value)
		}
	}
	if c.PossibleThreshold > c.ExactThreshold {
		return fmt.Errorf("possible threshold %v exceeds exact threshold %v", c.PossibleThreshold, c.ExactThreshold)
	}
	return nil
}

// Composite blends whole-string character similarity with token overlap into
// a single confidence score in [0, 1]. Both arguments must already be
// normalized. The full-precision result is used for ranking and
// classification; rounding happens only at the reporting boundary.
func (c Config) Composite(normalized1, normalized2 string) float64 {
	charScore := JaroWinkler(normalized1, normalized2)
	tokenScore := TokenOverlap(normalized1, normalized2, c.TokenMatchThreshold)
	return c.CharWeight*charScore + c.TokenWeight*tokenScore
}
