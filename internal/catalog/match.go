package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match returns the index of the choice closest to query. Prefix matches win
// outright; otherwise the smallest edit distance against the equally long
// prefix of each choice decides. ok is false for an empty query.
func (t *Table) Match(query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(t.Labels.Choices) == 0 {
		return 0, false
	}
	best, bestDist := 0, -1
	for i, choice := range t.Labels.Choices {
		c := strings.ToLower(choice)
		if strings.HasPrefix(c, q) {
			return i, true
		}
		d := levenshtein.ComputeDistance(q, prefixRunes(c, len([]rune(q))))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

func prefixRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
