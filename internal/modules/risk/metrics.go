package risk

import (
	"math"

	"github.com/aristath/portfolio-risk/pkg/formulas"
)

// Value-at-Risk methodologies.
const (
	VaRMethodHistorical = "historical"
	VaRMethodParametric = "parametric"
)

// varHorizons are the reporting horizons, in days, for Value at Risk.
var varHorizons = []int{1, 7, 30}

// CorrelationMatrix builds the symbol-by-symbol Pearson correlation matrix
// from each holding's historical return series. The diagonal is exactly 1;
// off-diagonal entries fall back to 0 on mismatched or degenerate series.
//
// O(n^2) in holding count, which is acceptable for realistic portfolios
// (tens to low hundreds of positions).
func CorrelationMatrix(holdings []Holding) map[string]map[string]float64 {
	matrix := make(map[string]map[string]float64, len(holdings))

	for _, a := range holdings {
		row := make(map[string]float64, len(holdings))
		for _, b := range holdings {
			if a.Symbol == b.Symbol {
				row[b.Symbol] = 1
				continue
			}
			row[b.Symbol] = formulas.Correlation(a.HistoricalReturns, b.HistoricalReturns)
		}
		matrix[a.Symbol] = row
	}

	return matrix
}

// PortfolioReturns builds the weighted daily portfolio return series from
// the holdings' historical returns.
//
// Series of different lengths are aligned on their most recent observations
// and truncated to the shortest non-empty series; holdings without history
// contribute nothing.
func PortfolioReturns(holdings []Holding) []float64 {
	minLen := 0
	for _, h := range holdings {
		if len(h.HistoricalReturns) == 0 {
			continue
		}
		if minLen == 0 || len(h.HistoricalReturns) < minLen {
			minLen = len(h.HistoricalReturns)
		}
	}
	if minLen == 0 {
		return []float64{}
	}

	series := make([]float64, minLen)
	for _, h := range holdings {
		if len(h.HistoricalReturns) == 0 {
			continue
		}
		// Trailing window keeps the most recent observations aligned.
		tail := h.HistoricalReturns[len(h.HistoricalReturns)-minLen:]
		for i, r := range tail {
			series[i] += h.Weight * r
		}
	}

	return series
}

// PortfolioBeta computes the weighted average beta across holdings.
// Holdings without a beta contribute the market-neutral default of 1.
func PortfolioBeta(holdings []Holding) float64 {
	if len(holdings) == 0 {
		return 1
	}

	beta := 0.0
	for _, h := range holdings {
		b := 1.0
		if h.Beta != nil {
			b = *h.Beta
		}
		beta += h.Weight * b
	}
	return beta
}

// BuildRiskMetrics assembles the formal risk-metrics bundle for a portfolio:
// VaR at the standard horizons, expected shortfall, maximum drawdown, a
// volatility breakdown, portfolio beta, the correlation matrix, and the
// risk-adjusted return ratios.
//
// The method selects the VaR estimator: VaRMethodHistorical simulates over
// the observed return series, VaRMethodParametric fits a normal distribution
// to it. Unknown methods fall back to historical. Expected shortfall is
// always computed from the empirical tail. Calmar ratio is always reported
// as 0, the sentinel for "not computed".
func BuildRiskMetrics(portfolio PortfolioData, market MarketData, confidence float64, method string) RiskMetrics {
	returns := PortfolioReturns(portfolio.Holdings)

	if method != VaRMethodParametric {
		method = VaRMethodHistorical
	}

	estimates := make([]VaREstimate, 0, len(varHorizons))
	for _, horizon := range varHorizons {
		estimates = append(estimates, VaREstimate{
			HorizonDays: horizon,
			Value:       valueAtRisk(returns, confidence, horizon, method),
		})
	}

	periodVolatility := 0.0
	for _, h := range portfolio.Holdings {
		periodVolatility += h.Weight * h.Volatility
	}

	return RiskMetrics{
		VaR:               estimates,
		Confidence:        confidence,
		Method:            method,
		ExpectedShortfall: formulas.ExpectedShortfall(returns, confidence),
		MaxDrawdown:       formulas.MaxDrawdown(returns),
		Volatility: VolatilityBreakdown{
			Realized:   formulas.AnnualizedVolatility(returns),
			Period:     periodVolatility,
			Annualized: true,
		},
		Beta:              PortfolioBeta(portfolio.Holdings),
		CorrelationMatrix: CorrelationMatrix(portfolio.Holdings),
		SharpeRatio:       formulas.SharpeRatio(returns, market.RiskFreeRate),
		SortinoRatio:      formulas.SortinoRatio(returns, market.RiskFreeRate),
		CalmarRatio:       0,
	}
}

// valueAtRisk dispatches on methodology. Both estimators produce a one-day
// figure scaled by sqrt(horizonDays) under the square-root-of-time rule.
func valueAtRisk(returns []float64, confidence float64, horizonDays int, method string) float64 {
	if method == VaRMethodParametric {
		oneDay := formulas.ParametricVaR(formulas.Mean(returns), formulas.StdDev(returns), confidence)
		return oneDay * math.Sqrt(float64(horizonDays))
	}
	return formulas.HistoricalVaR(returns, confidence, horizonDays)
}
