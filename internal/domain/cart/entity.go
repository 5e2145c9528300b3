// internal/domain/cart/entity.go
package cart

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Store is the persistence port the ledger saves its state through. Absent
// keys are reported through the ok flag, not an error. Implementations live
// under internal/infrastructure/storage.
type Store interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// LineItem is one entry of the ledger: a product snapshot plus a quantity.
// The snapshot is persisted with the item so a saved cart survives catalog
// changes between sessions.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// LineTotal returns effective unit price times quantity
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Totals represents the ledger's derived amounts. They are recomputed from
// the line-item sequence on every mutation and never set independently.
type Totals struct {
	ItemCount     int             `json:"item_count"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
}

// ledgerState is the blob persisted to the store: the full line-item
// sequence plus the derived totals
type ledgerState struct {
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	UpdatedAt time.Time  `json:"updated_at"`
}
