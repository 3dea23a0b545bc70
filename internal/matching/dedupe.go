package matching

import (
	"strings"

	"github.com/zchutly/rights-finder/internal/rights"
)

// Dedupe collapses near-duplicate rights by name: one name being a
// substring of the other, or a token-set Jaccard similarity above the
// configured threshold. The first occurrence wins and input order is
// preserved, so the operation is idempotent.
func Dedupe(matches *rights.Matches, threshold float64) *rights.Matches {
	kept := &rights.Matches{Items: make([]*rights.Match, 0, matches.Len())}

	for _, candidate := range matches.Items {
		duplicate := false
		for _, existing := range kept.Items {
			if sameRight(existing.Right.Name, candidate.Right.Name, threshold) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept.Items = append(kept.Items, candidate)
		}
	}

	return kept
}

func sameRight(a, b string, threshold float64) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	return jaccard(tokenSet(a), tokenSet(b)) > threshold
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(s) {
		set[token] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
