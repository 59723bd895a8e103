package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// skewness and kurtosis are undefined for windows whose sample variance
// falls at or below this
const flatVarianceEpsilon = 1e-14

func CalculateAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// CalculateSD returns the sample (N-1) standard deviation.
func CalculateSD(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	_, variance := stat.MeanVariance(values, nil)
	// compensated summation can land a hair below zero
	return math.Sqrt(math.Max(variance, 0))
}

// CalculateSkewness is the adjusted Fisher-Pearson sample skewness (G1).
func CalculateSkewness(values []float64) float64 {
	if len(values) < 3 || isFlat(values) {
		return math.NaN()
	}
	return stat.Skew(values, nil)
}

// CalculateKurtosis is the bias-corrected sample excess kurtosis (G2).
func CalculateKurtosis(values []float64) float64 {
	if len(values) < 4 || isFlat(values) {
		return math.NaN()
	}
	return stat.ExKurtosis(values, nil)
}

func isFlat(values []float64) bool {
	_, variance := stat.MeanVariance(values, nil)
	return variance <= flatVarianceEpsilon
}
