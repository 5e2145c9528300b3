// internal/domain/pricing/rules.go
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
)

// Shipping method identifiers
const (
	MethodStandard = "standard"
	MethodExpress  = "express"
	MethodNextDay  = "nextday"
)

// ShippingMethod represents one option of the fixed shipping-method table
type ShippingMethod struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	EstimatedDelivery string          `json:"estimated_delivery"`
}

// Rules is the single authority for every rate rule in the storefront: the
// tax rate, the free-shipping threshold and the shipping-method table. Both
// the cart ledger and the checkout flow derive their amounts from here so the
// two can never disagree.
type Rules struct {
	taxRate       decimal.Decimal
	freeThreshold decimal.Decimal
	standardRate  decimal.Decimal
	expressRate   decimal.Decimal
	nextDayRate   decimal.Decimal
}

// NewRules builds rate rules from configuration
func NewRules(cfg config.PricingConfig) Rules {
	return Rules{
		taxRate:       cfg.TaxRate,
		freeThreshold: cfg.FreeShippingThreshold,
		standardRate:  cfg.StandardShippingRate,
		expressRate:   cfg.ExpressShippingRate,
		nextDayRate:   cfg.NextDayShippingRate,
	}
}

// Tax returns the tax on a subtotal, rounded to 2 decimal places
func (r Rules) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(r.taxRate).Round(2)
}

// StandardShipping returns the standard shipping cost for a subtotal: zero
// when the subtotal is strictly above the free-shipping threshold, otherwise
// the flat standard rate.
func (r Rules) StandardShipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(r.freeThreshold) {
		return decimal.Zero
	}
	return r.standardRate
}

// Methods returns the shipping-method table for a given subtotal. The
// standard tier's price carries the free-shipping rule; express and next-day
// are flat.
func (r Rules) Methods(subtotal decimal.Decimal) []ShippingMethod {
	return []ShippingMethod{
		{
			ID:                MethodStandard,
			Name:              "Standard Shipping",
			Description:       "Delivery in 3-5 business days",
			Price:             r.StandardShipping(subtotal),
			EstimatedDelivery: "3-5 business days",
		},
		{
			ID:                MethodExpress,
			Name:              "Express Shipping",
			Description:       "Delivery in 2-3 business days",
			Price:             r.expressRate,
			EstimatedDelivery: "2-3 business days",
		},
		{
			ID:                MethodNextDay,
			Name:              "Next Day Delivery",
			Description:       "Order before 2pm for next day delivery",
			Price:             r.nextDayRate,
			EstimatedDelivery: "1 business day",
		},
	}
}

// MethodPrice returns the price of one shipping method for a subtotal.
// The second return value is false for an unknown method ID.
func (r Rules) MethodPrice(id string, subtotal decimal.Decimal) (decimal.Decimal, bool) {
	switch id {
	case MethodStandard:
		return r.StandardShipping(subtotal), true
	case MethodExpress:
		return r.expressRate, true
	case MethodNextDay:
		return r.nextDayRate, true
	}
	return decimal.Zero, false
}
