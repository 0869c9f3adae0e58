package risk

import "math"

// Risk-tolerance multipliers applied to the overall risk score.
const (
	conservativeMultiplier = 1.2
	moderateMultiplier     = 1.0
	aggressiveMultiplier   = 0.8
)

// OverallRiskScore computes the portfolio risk score on a 0-100 scale.
//
// The base score is the weighted volatility of the holdings scaled to
// points, increased by concentration risk and decreased by the
// diversification score, then adjusted by the portfolio's risk tolerance:
// a conservative investor sees the same portfolio as riskier than an
// aggressive one does.
//
// Weights are used as supplied; the engine never renormalizes them.
func OverallRiskScore(portfolio PortfolioData) float64 {
	weightedVolatility := 0.0
	for _, h := range portfolio.Holdings {
		weightedVolatility += h.Weight * h.Volatility
	}

	score := math.Min(weightedVolatility*100, 100)
	score += ConcentrationRisk(portfolio.Holdings) * 20
	score -= DiversificationScore(portfolio.Holdings) / 100 * 15
	score *= toleranceMultiplier(portfolio.RiskTolerance)

	return clamp(score, 0, 100)
}

// RiskGrade maps a 0-100 risk score to a letter grade. Band boundaries are
// inclusive on the low side: a score of exactly 20 grades A, 20.01 grades B.
func RiskGrade(score float64) string {
	switch {
	case score <= 20:
		return "A"
	case score <= 40:
		return "B"
	case score <= 60:
		return "C"
	case score <= 80:
		return "D"
	default:
		return "F"
	}
}

func toleranceMultiplier(tolerance RiskTolerance) float64 {
	switch tolerance {
	case ToleranceConservative:
		return conservativeMultiplier
	case ToleranceAggressive:
		return aggressiveMultiplier
	default:
		return moderateMultiplier
	}
}
