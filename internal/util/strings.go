// Package util provides small string helpers shared across the codebase.
package util

import (
	"slices"
	"strings"
)

// suggestMaxDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const suggestMaxDistance = 2

// LevenshteinDistance returns the number of single-character edits needed
// to turn a into b.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// SuggestSimilar returns up to limit candidates within a small edit distance
// of input, closest first. Comparison ignores case.
func SuggestSimilar(input string, candidates []string, limit int) []string {
	if input == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	lower := strings.ToLower(input)
	var matches []scored
	for _, c := range candidates {
		if d := LevenshteinDistance(lower, strings.ToLower(c)); d <= suggestMaxDistance {
			matches = append(matches, scored{c, d})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	slices.SortStableFunc(matches, func(a, b scored) int { return a.dist - b.dist })
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches[:min(limit, len(matches))] {
		out = append(out, m.name)
	}
	return out
}
