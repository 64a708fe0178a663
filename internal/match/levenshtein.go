package match

// Levenshtein computes the edit distance between a and b, counted in runes.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 - distance/maxLen over normalized identifiers:
// 1.0 for identifiers that normalize equal, 0.0 for nothing in common.
func Similarity(a, b string) float64 {
	na, nb := []rune(NormalizeIdent(a)), []rune(NormalizeIdent(b))

	maxLen := max(len(na), len(nb))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(string(na), string(nb)))/float64(maxLen)
}
