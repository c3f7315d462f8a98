package matching

// MatchType is the tiered confidence classification of a composite score.
type MatchType string

const (
	MatchTypeExact    MatchType = "EXACT_MATCH"
	MatchTypePossible MatchType = "POSSIBLE_MATCH"
	MatchTypeNone     MatchType = "NO_MATCH"
)

func (m MatchType) IsValid() bool {
	switch m {
	case MatchTypeExact, MatchTypePossible, MatchTypeNone:
		return true
	default:
		return false
	}
}

func (m MatchType) String() string {
	return string(m)
}

// Classify maps a composite score to its confidence tier. Tier boundaries are
// inclusive on the lower bound.
func (c Config) Classify(score float64) MatchType {
	switch {
	case score >= c.ExactThreshold:
		return MatchTypeExact
	case score >= c.PossibleThreshold:
		return MatchTypePossible
	default:
		return MatchTypeNone
	}
}
