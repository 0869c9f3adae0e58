package risk

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options tunes an Engine. Zero values fall back to defaults.
type Options struct {
	Confidence  float64 // VaR confidence level, default 0.95
	VaRMethod   string  // VaRMethodHistorical (default) or VaRMethodParametric
	Simulations int     // Monte Carlo trials, default 10000
	HorizonDays int     // Monte Carlo horizon, default 252
	Seed        int64   // Monte Carlo seed; 0 means time-based seeding
}

// Engine runs full portfolio risk assessments. It carries only
// configuration and a logger: every calculation is a pure function of the
// inputs to Assess, so a single Engine is safe for concurrent callers as
// long as each call owns its input snapshot.
type Engine struct {
	confidence  float64
	varMethod   string
	simulations int
	horizonDays int
	seed        int64
	log         zerolog.Logger
}

// NewEngine creates a risk engine.
func NewEngine(opts Options, log zerolog.Logger) *Engine {
	confidence := opts.Confidence
	if confidence <= 0 || confidence >= 1 {
		confidence = 0.95
	}
	simulations := opts.Simulations
	if simulations <= 0 {
		simulations = DefaultSimulations
	}
	horizonDays := opts.HorizonDays
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	varMethod := opts.VaRMethod
	if varMethod != VaRMethodParametric {
		varMethod = VaRMethodHistorical
	}

	return &Engine{
		confidence:  confidence,
		varMethod:   varMethod,
		simulations: simulations,
		horizonDays: horizonDays,
		seed:        opts.Seed,
		log:         log.With().Str("component", "risk_engine").Logger(),
	}
}

// Assess runs the full analytics pipeline over one portfolio snapshot and
// returns a single RiskAssessment: score and grade, formal metrics, weighted
// risk factors, the Monte Carlo outcome distribution, stress-scenario
// impacts, and prioritized recommendations.
//
// Returns an error only on caller contract violations (nil-equivalent
// input); degenerate but well-formed input degrades numerically instead.
func (e *Engine) Assess(portfolio PortfolioData, market MarketData, scenarios []ScenarioInput) (*RiskAssessment, error) {
	if err := validatePortfolio(portfolio); err != nil {
		return nil, err
	}

	start := time.Now()

	score := OverallRiskScore(portfolio)
	metrics := BuildRiskMetrics(portfolio, market, e.confidence, e.varMethod)
	factors := BuildRiskFactors(portfolio, metrics)

	rng := rand.New(rand.NewSource(e.monteCarloSeed()))
	monteCarlo := RunMonteCarloSimulation(portfolio, e.simulations, e.horizonDays, rng)

	assessment := &RiskAssessment{
		ID:              uuid.New().String(),
		GeneratedAt:     time.Now().UTC(),
		RiskScore:       score,
		RiskGrade:       RiskGrade(score),
		Metrics:         metrics,
		Factors:         factors,
		MonteCarlo:      monteCarlo,
		StressScenarios: AnalyzeStressScenarios(portfolio, scenarios),
		Recommendations: GenerateRecommendations(score, factors),
	}

	e.log.Info().
		Str("assessment_id", assessment.ID).
		Int("holdings", len(portfolio.Holdings)).
		Int("scenarios", len(scenarios)).
		Float64("risk_score", score).
		Str("risk_grade", assessment.RiskGrade).
		Dur("duration_ms", time.Since(start)).
		Msg("Completed risk assessment")

	return assessment, nil
}

// monteCarloSeed returns the configured seed, or a time-based seed when none
// was configured.
func (e *Engine) monteCarloSeed() int64 {
	if e.seed != 0 {
		return e.seed
	}
	return time.Now().UnixNano()
}

// validatePortfolio rejects caller contract violations at the boundary so
// they never surface deep inside a calculation.
func validatePortfolio(portfolio PortfolioData) error {
	for i, h := range portfolio.Holdings {
		if h.Symbol == "" {
			return fmt.Errorf("holding %d has no symbol", i)
		}
	}
	return nil
}
