// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "session_id", cfg.Session.CookieName)

	assert.True(t, decimal.RequireFromString("0.07").Equal(cfg.Pricing.TaxRate))
	assert.True(t, decimal.RequireFromString("100.00").Equal(cfg.Pricing.FreeShippingThreshold))
	assert.True(t, decimal.RequireFromString("8.99").Equal(cfg.Pricing.StandardShippingRate))
}

func TestGetEnvAsDecimal(t *testing.T) {
	t.Setenv("TEST_RATE", "0.15")
	assert.True(t, decimal.RequireFromString("0.15").Equal(getEnvAsDecimal("TEST_RATE", "0.07")))

	t.Setenv("TEST_RATE", "not-a-number")
	assert.True(t, decimal.RequireFromString("0.07").Equal(getEnvAsDecimal("TEST_RATE", "0.07")))

	assert.True(t, decimal.RequireFromString("0.07").Equal(getEnvAsDecimal("TEST_RATE_UNSET", "0.07")))
}

func TestValidateRejectsNegativeRates(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Pricing.TaxRate = decimal.RequireFromString("-0.01")
	assert.Error(t, cfg.Validate())

	cfg.Pricing.TaxRate = decimal.RequireFromString("0.07")
	cfg.Pricing.StandardShippingRate = decimal.RequireFromString("-1")
	assert.Error(t, cfg.Validate())
}
