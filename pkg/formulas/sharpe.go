package formulas

import (
	"math"
)

// TradingDaysPerYear is the conventional number of trading days used to
// convert annual rates to daily rates.
const TradingDaysPerYear = 252

// SharpeRatio calculates the Sharpe ratio from daily returns.
//
// Formula:
//
//	Sharpe = (mean daily return - annual risk-free rate / 252) / daily std dev
//
// The annualization factors cancel algebraically in this formulation, so no
// sqrt(252) scaling is applied.
//
// Args:
//
//	returns: Daily returns as decimals
//	riskFreeRate: Risk-free rate (annual, as decimal, e.g., 0.02 for 2%)
//
// Returns:
//
//	Sharpe ratio, or 0 on insufficient data or zero volatility
func SharpeRatio(returns []float64, riskFreeRate float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	stdDev := StdDev(returns)
	if stdDev == 0 {
		return 0
	}

	dailyRiskFree := riskFreeRate / TradingDaysPerYear
	return (Mean(returns) - dailyRiskFree) / stdDev
}

// SortinoRatio calculates the Sortino ratio (downside-deviation version of
// Sharpe) from daily returns.
//
// The numerator matches SharpeRatio. The denominator is the downside
// deviation over returns below the daily target, but the sum of squared
// deviations is divided by the total return count rather than the downside
// count, matching the historical behavior of this engine.
//
// Args:
//
//	returns: Daily returns as decimals
//	targetReturn: Minimum acceptable return (annual, as decimal)
//
// Returns:
//
//	Sortino ratio; +Inf when there are zero downside observations, 0 on
//	insufficient data
func SortinoRatio(returns []float64, targetReturn float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	dailyTarget := targetReturn / TradingDaysPerYear

	var downsideSquaredSum float64
	downsideCount := 0
	for _, r := range returns {
		if r < dailyTarget {
			deviation := r - dailyTarget
			downsideSquaredSum += deviation * deviation
			downsideCount++
		}
	}

	if downsideCount == 0 {
		return math.Inf(1)
	}

	downsideDeviation := math.Sqrt(downsideSquaredSum / float64(len(returns)))
	if downsideDeviation == 0 {
		return 0
	}

	return (Mean(returns) - dailyTarget) / downsideDeviation
}
