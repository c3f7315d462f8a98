// Package matching implements the fuzzy name-matching engine: normalization,
// Jaro-Winkler character similarity, token-overlap scoring, and their weighted
// composition into a tiered confidence classification.
package matching

import (
	"regexp"
	"sort"
	"strings"
)

// punctRegex matches characters that carry no matching signal: anything that
// is neither a word character nor whitespace.
var punctRegex = regexp.MustCompile(`[^\w\s]`)

// whitespaceRegex matches runs of whitespace for collapsing.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a raw name into its comparison form: lowercase,
// punctuation stripped, whitespace collapsed, tokens sorted lexicographically
// and rejoined with single spaces. The result is order-insensitive
// ("John Smith" and "Smith John" normalize identically) and normalizing an
// already-normalized name is a no-op.
func Normalize(name string) string {
	cleaned := strings.ToLower(name)
	cleaned = punctRegex.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	tokens := Tokens(cleaned)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Tokens splits a normalized name into its whitespace-delimited tokens.
// An empty or whitespace-only name yields zero tokens, not one empty token;
// degenerate names stay comparable downstream instead of being rejected here.
func Tokens(normalized string) []string {
	return strings.Fields(normalized)
}
