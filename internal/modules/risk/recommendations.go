package risk

import "fmt"

// Rule thresholds for recommendation triggers.
const (
	reduceExposureScoreThreshold = 80.0
	diversifyConcentrationScore  = 50.0
	addProtectionVolatilityScore = 60.0
)

// GenerateRecommendations maps the risk score and factor scores to
// prioritized mitigation actions. Rules are evaluated independently:
// multiple recommendations may fire for the same assessment.
func GenerateRecommendations(riskScore float64, factors []RiskFactor) []Recommendation {
	recommendations := make([]Recommendation, 0, 3)

	if riskScore > reduceExposureScoreThreshold {
		recommendations = append(recommendations, Recommendation{
			Action:         "reduce-exposure",
			Priority:       ImpactHigh,
			Rationale:      fmt.Sprintf("Overall risk score of %.0f exceeds the tolerable ceiling of %.0f", riskScore, reduceExposureScoreThreshold),
			ExpectedImpact: 15,
			Implementation: []string{
				"Identify the highest-volatility positions",
				"Sell down 10-20% of those positions into cash or short-duration bonds",
				"Re-run the assessment to confirm the score drops below 80",
			},
		})
	}

	if f, ok := findFactor(factors, "Concentration Risk"); ok && f.Score > diversifyConcentrationScore {
		recommendations = append(recommendations, Recommendation{
			Action:         "diversify",
			Priority:       ImpactHigh,
			Rationale:      fmt.Sprintf("Concentration factor score of %.0f indicates capital is clustered in too few positions", f.Score),
			ExpectedImpact: 12,
			Implementation: []string{
				"Cap any single position at 30% of portfolio value",
				"Spread proceeds across at least two additional sectors",
				"Consider broad-market index funds for instant diversification",
			},
		})
	}

	if f, ok := findFactor(factors, "Volatility Risk"); ok && f.Score > addProtectionVolatilityScore {
		recommendations = append(recommendations, Recommendation{
			Action:         "add-protection",
			Priority:       ImpactMedium,
			Rationale:      fmt.Sprintf("Volatility factor score of %.0f leaves the portfolio exposed to large drawdowns", f.Score),
			ExpectedImpact: 8,
			Implementation: []string{
				"Buy protective puts on the largest volatile positions",
				"Allocate 5-10% to low-correlation defensive assets",
			},
		})
	}

	return recommendations
}

func findFactor(factors []RiskFactor, name string) (RiskFactor, bool) {
	for _, f := range factors {
		if f.Name == name {
			return f, true
		}
	}
	return RiskFactor{}, false
}
