package match

import (
	"sort"
	"strings"

	"iface-caster/internal/common"
)

// MinScore is the similarity below which a name is not worth suggesting.
const MinScore = 0.5

// Candidate is a known name scored against the requested one.
type Candidate struct {
	Name  string
	Score float64 // 0-1, higher is closer
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every name against target and returns them best first.
// Qualified names ("pkg.Name") are compared by their last segment only: a
// shared package prefix says nothing about which type was meant.
func Rank(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	short := lastSegment(target)

	for _, name := range names {
		candidates = append(candidates, Candidate{Name: name, Score: Score(short, lastSegment(name))})
	}

	// Sort by score (descending), then by name for determinism
	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most limit names close enough to target.
func Suggest(target string, names []string, limit int) []string {
	var out []string

	for _, c := range Rank(target, names).Top(limit) {
		if c.Name == target || !common.IsInRange(MinScore, c.Score, 1.0) {
			continue
		}

		out = append(out, c.Name)
	}

	return out
}

func lastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}

	return c[:n]
}
