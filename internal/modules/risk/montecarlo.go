package risk

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/aristath/portfolio-risk/pkg/formulas"
)

// Monte Carlo defaults.
const (
	DefaultSimulations = 10000
	DefaultHorizonDays = 252
)

// percentileLadder is the set of reported outcome percentiles.
var percentileLadder = []float64{1, 5, 10, 25, 50, 75, 90, 95, 99}

// RunMonteCarloSimulation simulates the distribution of annualized portfolio
// outcomes.
//
// Each trial draws one normally distributed random return per holding
// (mean 0, std dev equal to that holding's volatility) via the Box-Muller
// transform, weight-sums across holdings into a one-period portfolio return,
// and scales by sqrt(horizonDays) under the square-root-of-time rule.
//
// The random source is injected so results are reproducible: pass a seeded
// *rand.Rand to get identical distributions across runs. A nil rng panics by
// contract; callers own the seeding policy.
func RunMonteCarloSimulation(portfolio PortfolioData, simulations, horizonDays int, rng *rand.Rand) MonteCarloResult {
	if simulations <= 0 {
		simulations = DefaultSimulations
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	sqrtHorizon := math.Sqrt(float64(horizonDays))
	outcomes := make([]float64, simulations)

	for i := 0; i < simulations; i++ {
		portfolioReturn := 0.0
		for _, h := range portfolio.Holdings {
			portfolioReturn += h.Weight * boxMuller(rng) * h.Volatility
		}
		outcomes[i] = portfolioReturn * sqrtHorizon
	}

	sort.Float64s(outcomes)

	percentiles := make(map[string]float64, len(percentileLadder))
	for _, p := range percentileLadder {
		percentiles[fmt.Sprintf("p%02.0f", p)] = formulas.Percentile(outcomes, p)
	}

	belowZero := sort.SearchFloat64s(outcomes, 0)

	return MonteCarloResult{
		Simulations:          simulations,
		HorizonDays:          horizonDays,
		ExpectedReturn:       formulas.Mean(outcomes),
		Volatility:           formulas.StdDev(outcomes),
		ShortfallProbability: float64(belowZero) / float64(simulations),
		Percentiles:          percentiles,
	}
}

// boxMuller draws one standard normal variate from two uniform draws using
// the Box-Muller transform.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
