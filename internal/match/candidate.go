package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the similarity below which Closest suggests nothing.
const MinSimilarity = 0.5

// Candidate is a known name scored against the input.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against input, best first. Equal scores keep
// the order of candidates.
func Rank(input string, candidates []string) []Candidate {
	res := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, Candidate{Name: c, Score: Similarity(input, c)})
	}

	slices.SortStableFunc(res, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return res
}

// Closest returns the candidate most similar to input, or false when none
// reaches MinSimilarity.
func Closest(input string, candidates []string) (string, bool) {
	ranked := Rank(input, candidates)
	if len(ranked) == 0 || ranked[0].Score < MinSimilarity {
		return "", false
	}

	return ranked[0].Name, true
}
