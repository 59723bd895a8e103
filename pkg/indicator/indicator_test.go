package indicator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateReturnPct(t *testing.T) {
	tests := []struct {
		name string
		last string
		prev string
		want float64
	}{
		{"gain", "100", "90", 11.111111111111111},
		{"loss", "95", "100", -5},
		{"flat", "42.5", "42.5", 0},
		{"fractional", "101.25", "100", 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateReturnPct(decimal.RequireFromString(tt.last), decimal.RequireFromString(tt.prev))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateReturnPct_ZeroPreviousClose(t *testing.T) {
	_, err := CalculateReturnPct(decimal.NewFromInt(100), decimal.Zero)
	assert.ErrorIs(t, err, ErrZeroPreviousClose)
}

func TestCalculateRollingStats_WarmUp(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7}
	stats := CalculateRollingStats(values, 5)

	require.Len(t, stats, len(values))
	for i := 0; i < 4; i++ {
		assert.Nil(t, stats[i], "index %d", i)
	}
	for i := 4; i < len(values); i++ {
		assert.NotNil(t, stats[i], "index %d", i)
	}
}

func TestCalculateRollingStats_KnownValues(t *testing.T) {
	stats := CalculateRollingStats([]float64{1, 2, 3, 4, 5}, 5)
	s := stats[4]
	require.NotNil(t, s)

	assert.InDelta(t, math.Sqrt(2.5), s.Volatility, 1e-12)
	assert.InDelta(t, 0, s.Skewness, 1e-12)
	assert.InDelta(t, -1.2, s.Kurtosis, 1e-12)
}

func TestCalculateRollingStats_Skewed(t *testing.T) {
	// mean 4, deviations -3 -2 -1 0 6, sample variance 12.5
	stats := CalculateRollingStats([]float64{1, 2, 3, 4, 10}, 5)
	s := stats[4]
	require.NotNil(t, s)

	assert.InDelta(t, math.Sqrt(12.5), s.Volatility, 1e-12)
	assert.InDelta(t, 1.2*math.Sqrt2, s.Skewness, 1e-9)
	assert.InDelta(t, 3.152, s.Kurtosis, 1e-9)
}

func TestCalculateRollingStats_FlatWindow(t *testing.T) {
	r := 100.0/90.0*100 - 100
	stats := CalculateRollingStats([]float64{r, r, r, r, r}, 5)
	s := stats[4]
	require.NotNil(t, s)

	assert.InDelta(t, 0, s.Volatility, 1e-12)
	assert.True(t, math.IsNaN(s.Skewness))
	assert.True(t, math.IsNaN(s.Kurtosis))
}

func TestCalculateRollingStats_TinyVarianceKeepsVolatility(t *testing.T) {
	// sample variance 5e-17, under the flat threshold
	values := []float64{1, 1 + 1e-8, 1 - 1e-8, 1, 1}
	stats := CalculateRollingStats(values, 5)
	s := stats[4]
	require.NotNil(t, s)

	assert.Greater(t, s.Volatility, 0.0)
	assert.InDelta(t, math.Sqrt(2e-16/4), s.Volatility, 1e-10)
	assert.True(t, math.IsNaN(s.Skewness))
	assert.True(t, math.IsNaN(s.Kurtosis))
}

func TestCalculateSD(t *testing.T) {
	assert.Equal(t, 0.0, CalculateSD(nil))
	assert.Equal(t, 0.0, CalculateSD([]float64{3}))
	assert.Equal(t, 0.0, CalculateSD([]float64{2, 2, 2}))
	assert.InDelta(t, math.Sqrt(2.5), CalculateSD([]float64{1, 2, 3, 4, 5}), 1e-12)
}

func TestCalculateRollingStats_IgnoresLaterValues(t *testing.T) {
	base := []float64{0.5, -1.2, 2.3, 0.1, -0.7, 1.9, 3.3, -2.2}
	changed := append([]float64(nil), base...)
	changed[6] = 250

	a := CalculateRollingStats(base, 5)
	b := CalculateRollingStats(changed, 5)
	for i := 0; i < 6; i++ {
		assert.Equal(t, a[i], b[i], "index %d", i)
	}
	assert.NotEqual(t, a[6].Volatility, b[6].Volatility)
}

func TestCalculateRollingStats_ShortInput(t *testing.T) {
	stats := CalculateRollingStats([]float64{1, 2, 3}, 5)
	require.Len(t, stats, 3)
	for _, s := range stats {
		assert.Nil(t, s)
	}
	assert.Empty(t, CalculateRollingStats(nil, 5))
}
