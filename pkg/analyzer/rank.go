package analyzer

import (
	"cmp"
	"slices"

	"volscan/pkg/types"
)

// Rank keeps records with a full window and returns the topN by volatility,
// highest first. Ties keep input order.
func (a *Analyzer) Rank(derived []types.DerivedRecord) []types.DerivedRecord {
	ranked := make([]types.DerivedRecord, 0, len(derived))
	for _, d := range derived {
		if d.HasStats() {
			ranked = append(ranked, d)
		}
	}

	slices.SortStableFunc(ranked, func(x, y types.DerivedRecord) int {
		return cmp.Compare(y.Stats.Volatility, x.Stats.Volatility)
	})

	if len(ranked) > a.topN {
		ranked = ranked[:max(a.topN, 0)]
	}
	return ranked
}
