package risk

import "math"

// Diversification sub-score caps and the concentration penalty pivot.
const (
	sectorScoreCap       = 50.0
	assetClassScoreCap   = 50.0
	holdingCountScoreCap = 20.0
	maxWeightPivot       = 0.3
)

// ConcentrationRisk calculates the Herfindahl-Hirschman Index of the
// portfolio: the sum of squared weights, clamped to [0,1].
//
// An empty portfolio returns 1 (maximal risk): concentration cannot be
// assessed, so it is treated as worst case.
func ConcentrationRisk(holdings []Holding) float64 {
	if len(holdings) == 0 {
		return 1
	}

	hhi := 0.0
	for _, h := range holdings {
		hhi += h.Weight * h.Weight
	}

	return clamp(hhi, 0, 1)
}

// DiversificationScore scores how diversified the portfolio is on a 0-100
// scale from four capped sub-scores: distinct sector count, distinct asset
// class count, holding count, and a concentration penalty that rewards no
// single holding exceeding 30%.
//
// An empty portfolio scores 0.
func DiversificationScore(holdings []Holding) float64 {
	if len(holdings) == 0 {
		return 0
	}

	sectors := make(map[string]bool)
	assetClasses := make(map[string]bool)
	maxWeight := 0.0

	for _, h := range holdings {
		if h.Sector != "" {
			sectors[h.Sector] = true
		}
		if h.AssetClass != "" {
			assetClasses[h.AssetClass] = true
		}
		if h.Weight > maxWeight {
			maxWeight = h.Weight
		}
	}

	sectorScore := math.Min(10*float64(len(sectors)), sectorScoreCap)
	assetClassScore := math.Min(15*float64(len(assetClasses)), assetClassScoreCap)
	holdingScore := math.Min(2*float64(len(holdings)), holdingCountScoreCap)
	concentrationBonus := math.Max(0, (maxWeightPivot-maxWeight)*100)

	return clamp(sectorScore+assetClassScore+holdingScore+concentrationBonus, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
