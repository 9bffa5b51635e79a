// Package fuzzy scores a request phrase against source aliases using a
// token-sort ratio: both strings are lowercased, split into tokens, sorted
// and compared with a normalized Levenshtein similarity. Word order in the
// request ("news fox" vs "fox news") does not matter.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

func tokenSort(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// TokenSortRatio returns a similarity in [0,1] between a and b.
func TokenSortRatio(a, b string) float64 {
	a = tokenSort(a)
	b = tokenSort(b)
	if a == "" || b == "" {
		return 0
	}
	lev := metrics.NewLevenshtein()
	return strutil.Similarity(a, b, lev)
}

// MatchOne returns the best-scoring candidate and its score. An empty
// candidate list scores zero.
func MatchOne(query string, candidates []string) (string, float64) {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if score := TokenSortRatio(query, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best, bestScore
}
