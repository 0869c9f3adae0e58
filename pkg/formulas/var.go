package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// HistoricalVaR calculates Value at Risk using the historical-simulation method.
//
// Returns are sorted ascending (worst first) and the value at index
// floor((1-confidence)*n) is taken as the one-day VaR, then scaled by
// sqrt(horizonDays) under the square-root-of-time rule, which assumes
// i.i.d. daily returns.
//
// Args:
//   - returns: Historical daily returns (negative = loss)
//   - confidence: Confidence level (e.g., 0.95 for 95%)
//   - horizonDays: Holding period in days
//
// Returns:
//   - VaR as a signed return (negative for losses); 0 for an empty series
func HistoricalVaR(returns []float64, confidence float64, horizonDays int) float64 {
	if len(returns) == 0 {
		return 0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := varIndex(len(sorted), confidence)
	return sorted[idx] * math.Sqrt(float64(horizonDays))
}

// ExpectedShortfall calculates the average return in the tail at or below
// the VaR index (inclusive). Empty series yields 0.
func ExpectedShortfall(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	idx := varIndex(len(sorted), confidence)

	sum := 0.0
	for i := 0; i <= idx; i++ {
		sum += sorted[i]
	}
	return sum / float64(idx+1)
}

// ParametricVaR calculates Value at Risk under a normal-distribution assumption.
// The VaR is the (1-confidence) quantile of N(mean, stdDev), expressed as a
// signed return like HistoricalVaR.
func ParametricVaR(mean, stdDev, confidence float64) float64 {
	if stdDev <= 0 {
		return 0
	}
	normal := distuv.Normal{Mu: mean, Sigma: stdDev}
	return normal.Quantile(1 - confidence)
}

// varIndex returns the tail index for a confidence level over n observations,
// clamped to a valid slice index.
func varIndex(n int, confidence float64) int {
	idx := int(math.Floor((1 - confidence) * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
