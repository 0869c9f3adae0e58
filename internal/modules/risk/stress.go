package risk

import "math"

// recoveryRate is the fraction of weighted average volatility assumed to be
// recovered per day in the time-to-recover heuristic.
const recoveryRate = 0.1

// AnalyzeStressScenarios applies each scenario's shock set to the portfolio
// and reports the portfolio-level impact, the single worst-hit asset, and a
// rough time-to-recover estimate.
//
// Shocks are looked up by symbol first, falling back to the holding's
// sector, defaulting to 0 when neither is present. Each shock is multiplied
// by the holding's weight and summed into the portfolio impact.
//
// TimeToRecover is an approximation, not a calibrated model:
// |portfolioImpact| / (weighted average volatility * 0.1).
func AnalyzeStressScenarios(portfolio PortfolioData, scenarios []ScenarioInput) []StressScenarioResult {
	results := make([]StressScenarioResult, 0, len(scenarios))

	weightedVolatility := 0.0
	for _, h := range portfolio.Holdings {
		weightedVolatility += h.Weight * h.Volatility
	}

	for _, scenario := range scenarios {
		portfolioImpact := 0.0
		worstAsset := ""
		worstImpact := 0.0

		for _, h := range portfolio.Holdings {
			shock, ok := scenario.Shocks[h.Symbol]
			if !ok {
				shock = scenario.Shocks[h.Sector]
			}

			impact := shock * h.Weight
			portfolioImpact += impact

			if math.Abs(impact) > math.Abs(worstImpact) {
				worstImpact = impact
				worstAsset = h.Symbol
			}
		}

		timeToRecover := 0.0
		if weightedVolatility > 0 {
			timeToRecover = math.Abs(portfolioImpact) / (weightedVolatility * recoveryRate)
		}

		results = append(results, StressScenarioResult{
			Name:            scenario.Name,
			Probability:     scenario.Probability,
			PortfolioImpact: portfolioImpact,
			WorstAsset:      worstAsset,
			WorstImpact:     worstImpact,
			TimeToRecover:   timeToRecover,
		})
	}

	return results
}
