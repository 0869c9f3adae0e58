package formulas

// MaxDrawdown calculates the maximum drawdown over a chronologically ordered
// return series.
//
// A cumulative wealth path starting at 1 is built by compounding each return
// multiplicatively; the running peak is tracked and the largest
// (peak - current) / peak is reported.
//
// The result is order-sensitive: callers must supply returns in
// chronological order.
//
// Args:
//   - returns: Daily returns as decimals (e.g., -0.02 = -2%)
//
// Returns:
//   - Maximum drawdown as a positive fraction (0.25 = 25% loss from peak)
func MaxDrawdown(returns []float64) float64 {
	maxDrawdown := 0.0
	value := 1.0
	peak := 1.0

	for _, r := range returns {
		value *= 1 + r

		if value > peak {
			peak = value
		}

		if peak > 0 {
			drawdown := (peak - value) / peak
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	return maxDrawdown
}
