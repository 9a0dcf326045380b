// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking target names
// ABOUTME: Suggest powers "did you mean" hints when a walkthrough target is unknown

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find performs fuzzy matching of pattern against items, best match first.
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns up to limit items that fuzzily match pattern.
// A limit of zero or less returns every match.
func Suggest(pattern string, items []string, limit int) []string {
	matches := Find(pattern, items)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
