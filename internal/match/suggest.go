package match

import (
	"cmp"
	"slices"
)

// DefaultSuggestThreshold is the minimum Similarity for a suggestion.
const DefaultSuggestThreshold = 0.5

// Suggest returns up to limit candidates similar to name, best first.
// Ties keep the candidates' original order.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored
	for _, c := range candidates {
		if s := Similarity(name, c); s >= DefaultSuggestThreshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}

// FindNormalized returns the first candidate whose normalized form equals
// name's, or "" if none does.
func FindNormalized(name string, candidates []string) (string, bool) {
	want := NormalizeIdent(name)
	for _, c := range candidates {
		if NormalizeIdent(c) == want {
			return c, true
		}
	}

	return "", false
}
