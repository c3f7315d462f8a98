package matching

// winklerPrefixScale is the fixed Winkler bonus per matching leading character.
const winklerPrefixScale = 0.1

// winklerMaxPrefix caps how many leading characters earn the prefix bonus.
const winklerMaxPrefix = 4

// JaroWinkler computes the Jaro-Winkler similarity between two strings,
// in [0, 1]. An empty argument always yields 0, including when both are empty;
// the equality shortcut applies only to non-empty strings.
//
// The match scan walks s2 left to right and claims the first unmarked
// candidate inside the window. That tie-break is part of the contract: scores
// are persisted, and a different scan order produces different scores for
// strings with repeated characters.
func JaroWinkler(s1, s2 string) float64 {
	r1 := []rune(s1)
	r2 := []rune(s2)
	len1, len2 := len(r1), len(r2)

	if len1 == 0 || len2 == 0 {
		return 0
	}
	if s1 == s2 {
		return 1.0
	}

	window := max(len1, len2)/2 - 1

	matched1 := make([]bool, len1)
	matched2 := make([]bool, len2)
	matches := 0

	for i := 0; i < len1; i++ {
		start := max(0, i-window)
		end := min(i+window+1, len2)

		for j := start; j < end; j++ {
			if matched2[j] || r1[i] != r2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions across the matched characters in order.
	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}
	halfTranspositions := float64(transpositions) / 2

	m := float64(matches)
	jaro := (m/float64(len1) + m/float64(len2) + (m-halfTranspositions)/m) / 3

	prefix := 0
	for i := 0; i < min(winklerMaxPrefix, min(len1, len2)); i++ {
		if r1[i] != r2[i] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*winklerPrefixScale*(1-jaro)
}

// TokenOverlap measures how many tokens of one normalized name have a
// near-exact counterpart in the other. A token counts as matched when its
// best Jaro-Winkler score against the other name's tokens reaches threshold.
// The result is matched/max(len1, len2), in [0, 1]; two token-less names
// overlap with score 0.
func TokenOverlap(normalized1, normalized2 string, threshold float64) float64 {
	tokens1 := Tokens(normalized1)
	tokens2 := Tokens(normalized2)

	denom := max(len(tokens1), len(tokens2))
	if denom == 0 {
		return 0
	}

	matched := 0
	for _, t1 := range tokens1 {
		best := 0.0
		for _, t2 := range tokens2 {
			if score := JaroWinkler(t1, t2); score > best {
				best = score
			}
		}
		if best >= threshold {
			matched++
		}
	}

	return float64(matched) / float64(denom)
}
