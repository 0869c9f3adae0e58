package risk

import (
	"fmt"
	"math"
	"strings"
)

// Advisory category weights. These explain relative factor importance and
// are not inputs to the overall risk score.
const (
	marketFactorWeight        = 0.3
	concentrationFactorWeight = 0.2
	volatilityFactorWeight    = 0.25
	liquidityFactorWeight     = 0.15
	currencyFactorWeight      = 0.1
)

// BuildRiskFactors assembles the fixed set of named risk factors for a
// portfolio: market, concentration, volatility, liquidity, and - when any
// holding's sector contains "International" - currency risk.
//
// Impact labels use per-factor thresholds:
//
//	Market (beta):        high > 1.2, medium > 0.8
//	Concentration (HHI):  high > 0.5, medium > 0.25
//	Volatility (period):  high > 0.3, medium > 0.15
//	Liquidity (score):    high < 50,  medium < 75
func BuildRiskFactors(portfolio PortfolioData, metrics RiskMetrics) []RiskFactor {
	factors := make([]RiskFactor, 0, 5)

	beta := metrics.Beta
	factors = append(factors, RiskFactor{
		Name:        "Market Risk",
		Category:    CategoryMarket,
		Score:       clamp(beta*50, 0, 100),
		Weight:      marketFactorWeight,
		Description: fmt.Sprintf("Portfolio beta of %.2f measures sensitivity to broad market moves", beta),
		Impact:      impactAboveThresholds(beta, 1.2, 0.8),
		Mitigation: []string{
			"Hedge with index put options or inverse ETFs",
			"Shift allocation toward low-beta or defensive sectors",
		},
	})

	hhi := ConcentrationRisk(portfolio.Holdings)
	factors = append(factors, RiskFactor{
		Name:        "Concentration Risk",
		Category:    CategoryConcentration,
		Score:       clamp(hhi*100, 0, 100),
		Weight:      concentrationFactorWeight,
		Description: fmt.Sprintf("Herfindahl index of %.2f reflects how evenly capital is spread across positions", hhi),
		Impact:      impactAboveThresholds(hhi, 0.5, 0.25),
		Mitigation: []string{
			"Trim positions exceeding 30% of portfolio value",
			"Add holdings in under-represented sectors and asset classes",
		},
	})

	periodVolatility := metrics.Volatility.Period
	factors = append(factors, RiskFactor{
		Name:        "Volatility Risk",
		Category:    CategoryMarket,
		Score:       clamp(periodVolatility*200, 0, 100),
		Weight:      volatilityFactorWeight,
		Description: fmt.Sprintf("Weighted portfolio volatility of %.1f%% drives the size of expected swings", periodVolatility*100),
		Impact:      impactAboveThresholds(periodVolatility, 0.3, 0.15),
		Mitigation: []string{
			"Add low-volatility assets such as bonds or cash equivalents",
			"Use protective puts on the most volatile positions",
		},
	})

	liqScore := liquidityScore(len(portfolio.Holdings))
	factors = append(factors, RiskFactor{
		Name:        "Liquidity Risk",
		Category:    CategoryLiquidity,
		Score:       liqScore,
		Weight:      liquidityFactorWeight,
		Description: fmt.Sprintf("Liquidity score of %.0f based on %d holdings; small portfolios unwind slowly", liqScore, len(portfolio.Holdings)),
		Impact:      impactBelowThresholds(liqScore, 50, 75),
		Mitigation: []string{
			"Favor instruments with deep daily trading volume",
			"Keep a cash buffer to avoid forced sales",
		},
	})

	if internationalWeight := internationalExposure(portfolio.Holdings); internationalWeight > 0 {
		factors = append(factors, RiskFactor{
			Name:        "Currency Risk",
			Category:    CategoryMarket,
			Score:       clamp(internationalWeight*100, 0, 100),
			Weight:      currencyFactorWeight,
			Description: fmt.Sprintf("%.1f%% of the portfolio is in international holdings exposed to FX moves", internationalWeight*100),
			Impact:      impactAboveThresholds(internationalWeight, 0.5, 0.25),
			Mitigation: []string{
				"Hedge foreign-currency exposure with forwards or currency ETFs",
				"Balance international allocation against home-currency assets",
			},
		})
	}

	return factors
}

// liquidityScore scores portfolio liquidity from the holding count alone:
// an inverse function of count that saturates at 100 past 20 holdings.
func liquidityScore(holdingCount int) float64 {
	return math.Min(5*float64(holdingCount), 100)
}

// internationalExposure sums the weight of holdings whose sector marks them
// as international.
func internationalExposure(holdings []Holding) float64 {
	weight := 0.0
	for _, h := range holdings {
		if strings.Contains(h.Sector, "International") {
			weight += h.Weight
		}
	}
	return weight
}

// impactAboveThresholds labels impact for factors where bigger is riskier.
func impactAboveThresholds(value, high, medium float64) ImpactLevel {
	switch {
	case value > high:
		return ImpactHigh
	case value > medium:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// impactBelowThresholds labels impact for factors where smaller is riskier.
func impactBelowThresholds(value, high, medium float64) ImpactLevel {
	switch {
	case value < high:
		return ImpactHigh
	case value < medium:
		return ImpactMedium
	default:
		return ImpactLow
	}
}
