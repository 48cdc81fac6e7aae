// Package crisis classifies free-text search input against a fixed list of
// self-harm and crisis phrases. Matching is a plain case-insensitive substring
// scan: no stemming, no fuzzy matching, no negation handling. The classifier is
// pure and synchronous so it can run inside a debounce window without a network
// round trip.
package crisis

import "strings"

// Verdict is the result of classifying one input string. Keyword holds the
// first phrase that matched, for diagnostics only.
type Verdict struct {
	Crisis  bool
	Keyword string
}

// Classify reports whether text contains any known crisis phrase.
// Empty or whitespace-only input never classifies as crisis.
func Classify(text string) Verdict {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Verdict{}
	}

	for _, keyword := range crisisKeywords {
		if strings.Contains(normalized, keyword) {
			return Verdict{Crisis: true, Keyword: keyword}
		}
	}
	return Verdict{}
}

// IsCrisis is a convenience wrapper for callers that only need the boolean.
func IsCrisis(text string) bool {
	return Classify(text).Crisis
}
