package indicator

import "volscan/pkg/types"

// CalculateRollingStats computes trailing-window statistics over values in
// the given order. Entry i covers values[i-window+1 : i+1]; the first
// window-1 entries are nil.
func CalculateRollingStats(values []float64, window int) []*types.WindowStats {
	stats := make([]*types.WindowStats, len(values))
	if window < 1 {
		return stats
	}

	for i := window - 1; i < len(values); i++ {
		w := values[i-window+1 : i+1]
		stats[i] = &types.WindowStats{
			Volatility: CalculateSD(w),
			Skewness:   CalculateSkewness(w),
			Kurtosis:   CalculateKurtosis(w),
		}
	}
	return stats
}
