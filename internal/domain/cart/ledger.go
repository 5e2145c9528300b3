// internal/domain/cart/ledger.go
package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Ledger owns the line items of one cart and keeps the derived totals in
// sync with them. Every mutation recomputes the totals and persists the full
// state through the injected store; persistence is best-effort and never
// rolls back an in-memory change.
//
// The ledger has a single logical owner (one storefront session) but lives
// in a concurrent HTTP process, so all operations take the ledger mutex.
type Ledger struct {
	mu     sync.Mutex
	key    string
	store  Store
	rules  pricing.Rules
	logger *logrus.Logger

	items  []LineItem
	totals Totals
}

// NewLedger creates a ledger bound to a storage key and rehydrates it from
// any previously persisted state. A missing blob starts the ledger empty; a
// malformed blob is discarded with a warning, never an error.
func NewLedger(key string, store Store, rules pricing.Rules, logger *logrus.Logger) *Ledger {
	l := &Ledger{
		key:    key,
		store:  store,
		rules:  rules,
		logger: logger,
	}
	l.rehydrate()
	return l
}

func (l *Ledger) rehydrate() {
	data, ok, err := l.store.Load(context.Background(), l.key)
	if err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("failed to load persisted cart, starting empty")
		l.recompute()
		return
	}
	if !ok {
		l.recompute()
		return
	}

	var state ledgerState
	if err := json.Unmarshal(data, &state); err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("discarding malformed persisted cart")
		l.recompute()
		return
	}

	// Replay each saved line item as an add so the uniqueness invariant
	// holds even over a blob with duplicated product entries.
	for _, item := range state.Items {
		if item.Quantity < 1 {
			continue
		}
		l.add(item.Product, item.Quantity, item.AddedAt)
	}
	l.recompute()
}

// Add puts quantity units of a product into the ledger. Quantity must be a
// positive integer; callers are responsible for never passing zero or
// negative values. Adding a product already present increments its quantity
// instead of appending a second entry.
func (l *Ledger) Add(product catalog.Product, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.add(product, quantity, time.Now().UTC())
	l.recompute()
	l.persist()
}

func (l *Ledger) add(product catalog.Product, quantity int, addedAt time.Time) {
	for i := range l.items {
		if l.items[i].Product.ID == product.ID {
			l.items[i].Quantity += quantity
			return
		}
	}
	l.items = append(l.items, LineItem{
		Product:  product,
		Quantity: quantity,
		AddedAt:  addedAt,
	})
}

// Remove deletes the line item for a product ID. Removing an absent product
// is a no-op, not an error.
func (l *Ledger) Remove(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.recompute()
			l.persist()
			return
		}
	}
}

// SetQuantity sets the quantity of an existing line item, clamped to a
// minimum of 1. Zero or negative requests leave one unit in the cart; removal
// is a distinct operation. An absent product is a no-op.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.items[i].Product.ID == productID {
			if quantity < 1 {
				quantity = 1
			}
			l.items[i].Quantity = quantity
			l.recompute()
			l.persist()
			return
		}
	}
}

// Clear empties the ledger, resets the derived totals to zero and removes
// the persisted blob
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.recompute()

	if err := l.store.Delete(context.Background(), l.key); err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("failed to delete persisted cart")
	}
}

// Totals returns a snapshot of the derived amounts, always consistent with
// the current line-item sequence
func (l *Ledger) Totals() Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals
}

// Items returns a copy of the line-item sequence in insertion order
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// TotalQuantity returns the summed quantity across all line items
func (l *Ledger) TotalQuantity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals.TotalQuantity
}

// IsEmpty reports whether the ledger has no line items
func (l *Ledger) IsEmpty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items) == 0
}

// recompute derives the totals from the line-item sequence. An empty
// sequence yields all-zero totals; this is what makes Clear and
// remove-to-empty agree.
func (l *Ledger) recompute() {
	totals := Totals{
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}

	if len(l.items) == 0 {
		l.totals = totals
		return
	}

	totals.ItemCount = len(l.items)
	for i := range l.items {
		totals.TotalQuantity += l.items[i].Quantity
		totals.Subtotal = totals.Subtotal.Add(l.items[i].LineTotal())
	}

	totals.Shipping = l.rules.StandardShipping(totals.Subtotal)
	totals.Tax = l.rules.Tax(totals.Subtotal)
	totals.Total = totals.Subtotal.Add(totals.Shipping).Add(totals.Tax)

	l.totals = totals
}

// persist saves the full ledger state. Failures are logged and swallowed;
// the in-memory state stays authoritative.
func (l *Ledger) persist() {
	state := ledgerState{
		Items:     l.items,
		Totals:    l.totals,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(state)
	if err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("failed to encode cart state")
		return
	}

	if err := l.store.Save(context.Background(), l.key, data); err != nil {
		l.logger.WithError(err).WithField("key", l.key).Warn("failed to persist cart state")
	}
}
