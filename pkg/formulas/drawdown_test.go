package formulas

import (
	"math"
	"testing"
)

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name      string
		returns   []float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "empty returns",
			returns:   []float64{},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "all positive returns have no drawdown",
			returns:   []float64{0.01, 0.02, 0.005},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name:      "single drop",
			returns:   []float64{0.10, -0.20, 0.05},
			expected:  0.20, // peak 1.10, trough 0.88 -> 20% drawdown
			tolerance: 1e-9,
		},
		{
			name:      "recovery does not erase drawdown",
			returns:   []float64{-0.10, 0.50},
			expected:  0.10,
			tolerance: 1e-9,
		},
		{
			name:      "consecutive losses compound",
			returns:   []float64{-0.05, -0.05, 0.10, 0.10},
			expected:  0.0975, // 1 -> 0.9025 before recovery
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MaxDrawdown(tt.returns)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("MaxDrawdown() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMaxDrawdown_OrderSensitive(t *testing.T) {
	// The same returns in a different order produce a different drawdown:
	// adjacent losses compound into a deeper trough than interleaved ones.
	interleaved := MaxDrawdown([]float64{-0.10, 0.10, -0.10})
	adjacent := MaxDrawdown([]float64{-0.10, -0.10, 0.10})

	if math.Abs(adjacent-0.19) > 1e-9 {
		t.Errorf("adjacent losses drawdown = %v, want 0.19", adjacent)
	}
	if adjacent <= interleaved {
		t.Errorf("expected adjacent losses (%v) to exceed interleaved (%v)", adjacent, interleaved)
	}
}
