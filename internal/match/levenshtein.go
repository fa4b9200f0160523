package match

// Levenshtein returns the number of single-rune insertions, deletions and
// substitutions needed to turn a into b. It works on runes, so a non-ASCII
// letter counts as one edit.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// keep the row as short as the shorter name
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			above := row[i]
			row[i] = min(above+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}

// Similarity maps the edit distance onto 0-1, 1 meaning identical:
// 1 - distance / longest length in runes.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// Score compares two type names after normalization, once as written and
// once with Interface/Iface/Impl suffixes stripped, and keeps the better
// result.
func Score(a, b string) float64 {
	return max(
		Similarity(NormalizeIdent(a), NormalizeIdent(b)),
		Similarity(NormalizeIdentWithSuffixStrip(a), NormalizeIdentWithSuffixStrip(b)),
	)
}
