// Package risk implements the portfolio risk analytics engine: risk scoring,
// formal risk metrics (VaR, expected shortfall, drawdown, Sharpe/Sortino),
// Monte Carlo outcome distributions, stress-scenario impacts, weighted risk
// factors, and prioritized mitigation recommendations.
//
// All calculations are stateless and side-effect-free; the engine holds no
// state between invocations and never mutates its inputs. Degenerate input
// (empty holdings, mismatched series, zero variance) yields well-defined
// fallback values rather than errors.
package risk

import (
	"encoding/json"
	"math"
	"time"
)

// RiskTolerance buckets a portfolio's risk appetite.
type RiskTolerance string

const (
	ToleranceConservative RiskTolerance = "conservative"
	ToleranceModerate     RiskTolerance = "moderate"
	ToleranceAggressive   RiskTolerance = "aggressive"
)

// Holding represents one position in a portfolio snapshot.
//
// Weight is the fractional allocation, expected in [0,1] but not clamped or
// renormalized by the engine; weight drift is the caller's responsibility.
// HistoricalReturns must be chronologically ordered daily returns and may
// have different lengths across holdings. Volatility is the period
// volatility supplied by the caller, not necessarily derived from
// HistoricalReturns.
type Holding struct {
	Symbol            string             `json:"symbol"`
	Quantity          float64            `json:"quantity"`
	CurrentPrice      float64            `json:"current_price"`
	Weight            float64            `json:"weight"`
	HistoricalReturns []float64          `json:"historical_returns"`
	Volatility        float64            `json:"volatility"`
	Beta              *float64           `json:"beta,omitempty"`
	Sector            string             `json:"sector,omitempty"`
	AssetClass        string             `json:"asset_class,omitempty"`
	Correlation       map[string]float64 `json:"correlation,omitempty"`
}

// PortfolioData is a point-in-time portfolio snapshot. Holdings may be
// empty; every calculation must still produce a well-defined result.
type PortfolioData struct {
	Holdings      []Holding     `json:"holdings"`
	TotalValue    float64       `json:"total_value"`
	TimeHorizon   int           `json:"time_horizon"` // days
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
}

// MarketData is the market snapshot supplied per invocation.
type MarketData struct {
	RiskFreeRate      float64                       `json:"risk_free_rate"` // annualized
	MarketReturn      float64                       `json:"market_return"`
	MarketVolatility  float64                       `json:"market_volatility"`
	CorrelationMatrix map[string]map[string]float64 `json:"correlation_matrix,omitempty"`
}

// ScenarioInput defines one discrete stress scenario. Shocks are fractional
// returns keyed by symbol or sector; symbol entries take precedence.
type ScenarioInput struct {
	Name        string             `json:"name"`
	Shocks      map[string]float64 `json:"shocks"`
	Probability float64            `json:"probability"`
}

// FactorCategory classifies a risk factor.
type FactorCategory string

const (
	CategoryMarket        FactorCategory = "market"
	CategoryConcentration FactorCategory = "concentration"
	CategoryLiquidity     FactorCategory = "liquidity"
	CategoryCredit        FactorCategory = "credit"
	CategoryOperational   FactorCategory = "operational"
	CategoryRegulatory    FactorCategory = "regulatory"
)

// ImpactLevel is a qualitative impact label.
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// RiskFactor is a named, categorized, weighted contributor to portfolio risk.
// Weight is advisory only: factor weights are explanatory and are not summed
// into the overall risk score.
type RiskFactor struct {
	Name        string         `json:"name"`
	Category    FactorCategory `json:"category"`
	Score       float64        `json:"score"`  // 0-100
	Weight      float64        `json:"weight"` // 0-1, advisory
	Description string         `json:"description"`
	Impact      ImpactLevel    `json:"impact"`
	Mitigation  []string       `json:"mitigation"`
}

// VaREstimate holds a Value-at-Risk figure for one horizon.
type VaREstimate struct {
	HorizonDays int     `json:"horizon_days"`
	Value       float64 `json:"value"`
}

// VolatilityBreakdown separates volatility estimates by methodology.
// Implied and GARCH are 0 sentinels unless the caller supplies them.
type VolatilityBreakdown struct {
	Realized   float64 `json:"realized"`
	Implied    float64 `json:"implied"`
	GARCH      float64 `json:"garch"`
	Period     float64 `json:"period"`
	Annualized bool    `json:"annualized"`
}

// RiskMetrics is the aggregate formal-metrics bundle.
//
// CalmarRatio is reported as 0, a sentinel for "not computed"; downstream
// consumers depend on that value.
type RiskMetrics struct {
	VaR               []VaREstimate                 `json:"var"`
	Confidence        float64                       `json:"confidence"`
	Method            string                        `json:"method"`
	ExpectedShortfall float64                       `json:"expected_shortfall"`
	MaxDrawdown       float64                       `json:"max_drawdown"`
	Volatility        VolatilityBreakdown           `json:"volatility"`
	Beta              float64                       `json:"beta"`
	CorrelationMatrix map[string]map[string]float64 `json:"correlation_matrix"`
	SharpeRatio       float64                       `json:"sharpe_ratio"`
	SortinoRatio      float64                       `json:"sortino_ratio"`
	CalmarRatio       float64                       `json:"calmar_ratio"`
}

// jsonFloat marshals non-finite values as null. encoding/json rejects NaN
// and infinities outright, and SortinoRatio is legitimately +Inf for a
// portfolio with no downside observations.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// MarshalJSON keeps the serialized form JSON-safe while the in-memory
// struct preserves float64 semantics, including the +Inf Sortino case.
func (m RiskMetrics) MarshalJSON() ([]byte, error) {
	type riskMetricsAlias RiskMetrics
	return json.Marshal(struct {
		riskMetricsAlias
		SharpeRatio  jsonFloat `json:"sharpe_ratio"`
		SortinoRatio jsonFloat `json:"sortino_ratio"`
	}{
		riskMetricsAlias: riskMetricsAlias(m),
		SharpeRatio:      jsonFloat(m.SharpeRatio),
		SortinoRatio:     jsonFloat(m.SortinoRatio),
	})
}

// MonteCarloResult summarizes the simulated outcome distribution.
type MonteCarloResult struct {
	Simulations          int                `json:"simulations"`
	HorizonDays          int                `json:"horizon_days"`
	ExpectedReturn       float64            `json:"expected_return"`
	Volatility           float64            `json:"volatility"`
	ShortfallProbability float64            `json:"shortfall_probability"`
	Percentiles          map[string]float64 `json:"percentiles"`
}

// StressScenarioResult reports the impact of one stress scenario.
type StressScenarioResult struct {
	Name            string  `json:"name"`
	Probability     float64 `json:"probability"`
	PortfolioImpact float64 `json:"portfolio_impact"`
	WorstAsset      string  `json:"worst_asset"`
	WorstImpact     float64 `json:"worst_impact"`
	TimeToRecover   float64 `json:"time_to_recover"` // days, rough heuristic
}

// Recommendation is a prioritized mitigation action.
type Recommendation struct {
	Action         string      `json:"action"`
	Priority       ImpactLevel `json:"priority"`
	Rationale      string      `json:"rationale"`
	ExpectedImpact float64     `json:"expected_impact"` // percentage points of risk score
	Implementation []string    `json:"implementation"`
}

// RiskAssessment is the single result object produced by one engine run.
type RiskAssessment struct {
	ID              string                 `json:"id"`
	GeneratedAt     time.Time              `json:"generated_at"`
	RiskScore       float64                `json:"risk_score"`
	RiskGrade       string                 `json:"risk_grade"`
	Metrics         RiskMetrics            `json:"metrics"`
	Factors         []RiskFactor           `json:"factors"`
	MonteCarlo      MonteCarloResult       `json:"monte_carlo"`
	StressScenarios []StressScenarioResult `json:"stress_scenarios"`
	Recommendations []Recommendation       `json:"recommendations"`
}
