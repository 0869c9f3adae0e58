package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8001, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Equal(t, 10000, cfg.Simulations)
	assert.Equal(t, 0.95, cfg.Confidence)
	assert.Equal(t, "historical", cfg.VaRMethod)
	assert.Equal(t, int64(0), cfg.MonteCarloSeed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MC_SIMULATIONS", "5000")
	t.Setenv("VAR_CONFIDENCE", "0.99")
	t.Setenv("VAR_METHOD", "parametric")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.Simulations)
	assert.Equal(t, 0.99, cfg.Confidence)
	assert.Equal(t, "parametric", cfg.VaRMethod)
}

func TestLoad_RejectsUnknownVaRMethod(t *testing.T) {
	t.Setenv("VAR_METHOD", "garch")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Confidence: 0.95, Simulations: 1000, VaRMethod: "historical"}, false},
		{"parametric method", Config{Confidence: 0.95, Simulations: 1000, VaRMethod: "parametric"}, false},
		{"confidence too high", Config{Confidence: 1.0, Simulations: 1000, VaRMethod: "historical"}, true},
		{"confidence zero", Config{Confidence: 0, Simulations: 1000, VaRMethod: "historical"}, true},
		{"no simulations", Config{Confidence: 0.95, Simulations: 0, VaRMethod: "historical"}, true},
		{"unknown var method", Config{Confidence: 0.95, Simulations: 1000, VaRMethod: "garch"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
