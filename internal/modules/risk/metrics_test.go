package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/portfolio-risk/pkg/formulas"
)

func TestCorrelationMatrix(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAA", HistoricalReturns: []float64{0.01, -0.02, 0.03, 0.005}},
		{Symbol: "BBB", HistoricalReturns: []float64{0.02, -0.04, 0.06, 0.01}},   // 2x AAA
		{Symbol: "CCC", HistoricalReturns: []float64{-0.01, 0.02, -0.03, -0.005}}, // -1x AAA
		{Symbol: "DDD", HistoricalReturns: []float64{0.01, 0.02}},                 // mismatched length
	}

	matrix := CorrelationMatrix(holdings)

	require.Len(t, matrix, 4)

	// Diagonal is exactly 1, even for degenerate series.
	for _, h := range holdings {
		assert.Equal(t, 1.0, matrix[h.Symbol][h.Symbol])
	}

	assert.InDelta(t, 1.0, matrix["AAA"]["BBB"], 1e-9, "perfectly correlated pair")
	assert.InDelta(t, -1.0, matrix["AAA"]["CCC"], 1e-9, "perfectly anti-correlated pair")
	assert.Equal(t, 0.0, matrix["AAA"]["DDD"], "mismatched lengths fall back to 0")

	// Symmetry.
	assert.Equal(t, matrix["AAA"]["BBB"], matrix["BBB"]["AAA"])
}

func TestCorrelationMatrix_Empty(t *testing.T) {
	matrix := CorrelationMatrix(nil)
	assert.Empty(t, matrix)
}

func TestPortfolioReturns(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAA", Weight: 0.5, HistoricalReturns: []float64{0.10, 0.02, 0.04}},
		{Symbol: "BBB", Weight: 0.5, HistoricalReturns: []float64{0.02, 0.06}}, // shorter
		{Symbol: "CCC", Weight: 0.2},                                           // no history
	}

	series := PortfolioReturns(holdings)
	require.Len(t, series, 2, "truncated to shortest non-empty series")

	// AAA aligned on its trailing two observations.
	assert.InDelta(t, 0.5*0.02+0.5*0.02, series[0], 1e-12)
	assert.InDelta(t, 0.5*0.04+0.5*0.06, series[1], 1e-12)
}

func TestPortfolioReturns_NoHistory(t *testing.T) {
	assert.Empty(t, PortfolioReturns([]Holding{{Symbol: "AAA", Weight: 1}}))
	assert.Empty(t, PortfolioReturns(nil))
}

func TestPortfolioBeta(t *testing.T) {
	beta2 := 2.0
	beta0 := 0.5

	tests := []struct {
		name     string
		holdings []Holding
		expected float64
	}{
		{"empty defaults to 1", nil, 1.0},
		{
			"missing betas default to 1",
			[]Holding{{Symbol: "AAA", Weight: 0.5}, {Symbol: "BBB", Weight: 0.5}},
			1.0,
		},
		{
			"weighted mix",
			[]Holding{
				{Symbol: "AAA", Weight: 0.5, Beta: &beta2},
				{Symbol: "BBB", Weight: 0.5, Beta: &beta0},
			},
			1.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PortfolioBeta(tt.holdings), 1e-9)
		})
	}
}

func TestBuildRiskMetrics(t *testing.T) {
	portfolio := threeHoldingPortfolio(ToleranceModerate)
	for i := range portfolio.Holdings {
		portfolio.Holdings[i].HistoricalReturns = []float64{
			0.01, -0.02, 0.015, -0.005, 0.02, -0.01, 0.005, 0.01, -0.015, 0.01,
		}
	}

	metrics := BuildRiskMetrics(portfolio, MarketData{RiskFreeRate: 0.02}, 0.95, VaRMethodHistorical)

	require.Len(t, metrics.VaR, 3)
	assert.Equal(t, 1, metrics.VaR[0].HorizonDays)
	assert.Equal(t, 7, metrics.VaR[1].HorizonDays)
	assert.Equal(t, 30, metrics.VaR[2].HorizonDays)

	// Square-root-of-time scaling across horizons.
	assert.InDelta(t, metrics.VaR[0].Value*math.Sqrt(7), metrics.VaR[1].Value, 1e-12)
	assert.InDelta(t, metrics.VaR[0].Value*math.Sqrt(30), metrics.VaR[2].Value, 1e-12)

	assert.Equal(t, "historical", metrics.Method)
	assert.Equal(t, 0.95, metrics.Confidence)

	// Identical per-holding series make the portfolio series a scaled copy,
	// so drawdown must be positive for this mixed series.
	assert.Greater(t, metrics.MaxDrawdown, 0.0)

	// Period volatility is the weighted holding volatility.
	assert.InDelta(t, 0.31, metrics.Volatility.Period, 1e-9)
	assert.True(t, metrics.Volatility.Annualized)
	assert.Zero(t, metrics.Volatility.Implied)
	assert.Zero(t, metrics.Volatility.GARCH)

	assert.Equal(t, 1.0, metrics.Beta, "no explicit betas supplied")
	assert.Len(t, metrics.CorrelationMatrix, 3)

	// Calmar is a sentinel for "not computed".
	assert.Zero(t, metrics.CalmarRatio)
}

func TestBuildRiskMetrics_ParametricMethod(t *testing.T) {
	portfolio := threeHoldingPortfolio(ToleranceModerate)
	for i := range portfolio.Holdings {
		portfolio.Holdings[i].HistoricalReturns = []float64{
			0.01, -0.02, 0.015, -0.005, 0.02, -0.01, 0.005, 0.01, -0.015, 0.01,
		}
	}

	metrics := BuildRiskMetrics(portfolio, MarketData{}, 0.95, VaRMethodParametric)

	assert.Equal(t, "parametric", metrics.Method)

	// Normal-quantile VaR over the portfolio return series, scaled per horizon.
	returns := PortfolioReturns(portfolio.Holdings)
	oneDay := formulas.ParametricVaR(formulas.Mean(returns), formulas.StdDev(returns), 0.95)
	require.Len(t, metrics.VaR, 3)
	assert.InDelta(t, oneDay, metrics.VaR[0].Value, 1e-12)
	assert.InDelta(t, oneDay*math.Sqrt(7), metrics.VaR[1].Value, 1e-12)
	assert.InDelta(t, oneDay*math.Sqrt(30), metrics.VaR[2].Value, 1e-12)

	// The two methodologies disagree on this series.
	historical := BuildRiskMetrics(portfolio, MarketData{}, 0.95, VaRMethodHistorical)
	assert.NotEqual(t, historical.VaR[0].Value, metrics.VaR[0].Value)
}

func TestBuildRiskMetrics_UnknownMethodFallsBack(t *testing.T) {
	metrics := BuildRiskMetrics(PortfolioData{}, MarketData{}, 0.95, "garch")
	assert.Equal(t, "historical", metrics.Method)
}

func TestBuildRiskMetrics_EmptyPortfolio(t *testing.T) {
	metrics := BuildRiskMetrics(PortfolioData{}, MarketData{}, 0.95, VaRMethodHistorical)

	for _, v := range metrics.VaR {
		assert.Zero(t, v.Value)
	}
	assert.Zero(t, metrics.ExpectedShortfall)
	assert.Zero(t, metrics.MaxDrawdown)
	assert.Zero(t, metrics.Volatility.Realized)
	assert.Equal(t, 1.0, metrics.Beta)
	assert.Empty(t, metrics.CorrelationMatrix)
}
