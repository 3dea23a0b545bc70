package matching

import (
	"sort"

	"github.com/zchutly/rights-finder/internal/rights"
)

// Gate decides whether a Right's criteria carry enough discriminating
// information to be worth evaluating. It is a pluggable policy point: the
// default accepts everything and lets the matcher do all the
// discrimination.
type Gate interface {
	IsSpecific(c *rights.Criteria) bool
}

// PassAllGate accepts every Right. This is the default policy.
type PassAllGate struct{}

func (PassAllGate) IsSpecific(*rights.Criteria) bool { return true }

// MinCriteriaGate requires a minimum count of meaningful criteria: set
// booleans and restricting low-cardinality lists. Rights with no criteria at
// all still pass, since a criteria-free Right is universally eligible and is
// filtered by value, not specificity.
type MinCriteriaGate struct {
	Min int
}

func (g MinCriteriaGate) IsSpecific(c *rights.Criteria) bool {
	if c == nil {
		return true
	}
	return c.MeaningfulCount() >= g.Min
}

// GateFromConfig picks the gate policy for the configured minimum.
func GateFromConfig(cfg Config) Gate {
	if cfg.MinSpecificCriteria <= 0 {
		return PassAllGate{}
	}
	return MinCriteriaGate{Min: cfg.MinSpecificCriteria}
}

// Rank sorts matches by extracted value descending. The sort is stable so
// equal values keep their catalog order, and the result is truncated to the
// configured candidate cap.
func Rank(matches *rights.Matches, cfg Config) *rights.Matches {
	ranked := &rights.Matches{Items: make([]*rights.Match, matches.Len())}
	copy(ranked.Items, matches.Items)

	sort.SliceStable(ranked.Items, func(i, j int) bool {
		return ranked.Items[i].Value > ranked.Items[j].Value
	})

	if cfg.MaxCandidates > 0 && len(ranked.Items) > cfg.MaxCandidates {
		ranked.Items = ranked.Items[:cfg.MaxCandidates]
	}
	return ranked
}
