// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product represents a storefront product. The catalog is a read-only data
// source: products are seeded at startup and never mutated.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	DiscountPrice  *decimal.Decimal  `json:"discount_price,omitempty"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Tags           []string          `json:"tags"`
	InStock        bool              `json:"in_stock"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// EffectivePrice returns the unit price a buyer actually pays: the discount
// price when one is set, otherwise the base price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasDiscount reports whether the product carries a discount price
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price)
}

// DiscountPercentage returns the rounded discount in percent, 0 when there is none
func (p *Product) DiscountPercentage() int {
	if !p.HasDiscount() {
		return 0
	}
	diff := p.Price.Sub(*p.DiscountPrice)
	return int(diff.Mul(decimal.NewFromInt(100)).Div(p.Price).Round(0).IntPart())
}

// Review represents a customer review attached to a catalog product
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	Verified  bool   `json:"verified"`
}
