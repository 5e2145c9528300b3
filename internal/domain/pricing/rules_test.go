// internal/domain/pricing/rules_test.go
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testRules() Rules {
	return NewRules(config.PricingConfig{
		TaxRate:               decimal.RequireFromString("0.07"),
		FreeShippingThreshold: decimal.RequireFromString("100.00"),
		StandardShippingRate:  decimal.RequireFromString("8.99"),
		ExpressShippingRate:   decimal.RequireFromString("12.99"),
		NextDayShippingRate:   decimal.RequireFromString("24.99"),
	})
}

func TestTaxRoundsToCents(t *testing.T) {
	rules := testRules()

	tests := []struct {
		subtotal string
		want     string
	}{
		{"50.00", "3.50"},
		{"100.00", "7.00"},
		{"19.99", "1.40"},  // 1.3993 rounds up
		{"10.05", "0.70"},  // 0.7035 rounds down
		{"0.01", "0.00"}, // 0.0007 rounds to zero
		{"249.98", "17.50"},
	}

	for _, tt := range tests {
		got := rules.Tax(decimal.RequireFromString(tt.subtotal))
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
			"tax on %s: want %s, got %s", tt.subtotal, tt.want, got)
	}
}

func TestStandardShippingThresholdIsStrict(t *testing.T) {
	rules := testRules()

	// Exactly at the threshold still pays the flat rate
	got := rules.StandardShipping(decimal.RequireFromString("100.00"))
	assert.True(t, decimal.RequireFromString("8.99").Equal(got), "at threshold: got %s", got)

	// One cent above qualifies for free shipping
	got = rules.StandardShipping(decimal.RequireFromString("100.01"))
	assert.True(t, got.IsZero(), "above threshold: got %s", got)

	got = rules.StandardShipping(decimal.RequireFromString("50.00"))
	assert.True(t, decimal.RequireFromString("8.99").Equal(got), "below threshold: got %s", got)
}

func TestMethodsTable(t *testing.T) {
	rules := testRules()

	methods := rules.Methods(decimal.RequireFromString("50.00"))
	require.Len(t, methods, 3)

	assert.Equal(t, MethodStandard, methods[0].ID)
	assert.Equal(t, MethodExpress, methods[1].ID)
	assert.Equal(t, MethodNextDay, methods[2].ID)

	assert.True(t, decimal.RequireFromString("8.99").Equal(methods[0].Price))
	assert.True(t, decimal.RequireFromString("12.99").Equal(methods[1].Price))
	assert.True(t, decimal.RequireFromString("24.99").Equal(methods[2].Price))

	// Only the standard tier carries the free-shipping rule
	methods = rules.Methods(decimal.RequireFromString("150.00"))
	assert.True(t, methods[0].Price.IsZero())
	assert.True(t, decimal.RequireFromString("12.99").Equal(methods[1].Price))
	assert.True(t, decimal.RequireFromString("24.99").Equal(methods[2].Price))
}

func TestMethodPrice(t *testing.T) {
	rules := testRules()

	price, ok := rules.MethodPrice(MethodExpress, decimal.RequireFromString("200.00"))
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("12.99").Equal(price))

	price, ok = rules.MethodPrice(MethodStandard, decimal.RequireFromString("200.00"))
	require.True(t, ok)
	assert.True(t, price.IsZero())

	_, ok = rules.MethodPrice("drone", decimal.Zero)
	assert.False(t, ok)
}
