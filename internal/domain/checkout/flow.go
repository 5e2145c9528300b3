// internal/domain/checkout/flow.go
package checkout

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Step is one named state of the checkout wizard
type Step string

// The four ordered wizard steps plus the absorbing terminal state
const (
	StepInformation Step = "information"
	StepShipping    Step = "shipping"
	StepPayment     Step = "payment"
	StepReview      Step = "review"
	StepCompleted   Step = "completed"
)

// stepOrder is the fixed forward path of the wizard
var stepOrder = []Step{StepInformation, StepShipping, StepPayment, StepReview}

// ErrEmptyCart is returned when checkout is entered with an empty cart
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrUnknownShippingMethod is returned for a shipping method ID outside the
// fixed three-option table
var ErrUnknownShippingMethod = errors.New("checkout: unknown shipping method")

// ContactInfo holds the buyer's contact and shipping address fields. All
// fields are optional until the information step completes.
type ContactInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Summary is the pricing breakdown shown alongside every step. Shipping is
// priced by the selected method, not the ledger's standard estimate.
type Summary struct {
	Subtotal       decimal.Decimal        `json:"subtotal"`
	Shipping       decimal.Decimal        `json:"shipping"`
	Tax            decimal.Decimal        `json:"tax"`
	Total          decimal.Decimal        `json:"total"`
	ShippingMethod pricing.ShippingMethod `json:"shipping_method"`
}

// OrderConfirmation is the terminal result of a completed checkout
type OrderConfirmation struct {
	OrderNumber string          `json:"order_number"`
	PlacedAt    time.Time       `json:"placed_at"`
	Total       decimal.Decimal `json:"total"`
}

// Session is the checkout flow controller: a linear state machine over the
// four wizard steps, bound to one cart ledger. Placing the order clears the
// ledger and moves the session into the absorbing completed state.
type Session struct {
	mu     sync.Mutex
	ledger *cart.Ledger
	rules  pricing.Rules

	stepIndex      int
	contact        ContactInfo
	shippingMethod string
	completed      bool
	order          *OrderConfirmation
}

// NewSession starts a checkout for the given ledger. The entry guard refuses
// an empty cart; a post-order empty cart never reaches this point because a
// completed session is kept, not re-created.
func NewSession(ledger *cart.Ledger, rules pricing.Rules) (*Session, error) {
	if ledger.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Session{
		ledger:         ledger,
		rules:          rules,
		shippingMethod: pricing.MethodStandard,
	}, nil
}

// Step returns the current wizard step
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return StepCompleted
	}
	return stepOrder[s.stepIndex]
}

// Advance moves the wizard forward one step. From the review step it places
// the order: the final total is computed from the selected shipping method,
// the ledger is cleared and the session becomes terminal. Advancing a
// completed session is a no-op.
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return
	}

	if stepOrder[s.stepIndex] == StepReview {
		s.placeOrder()
		return
	}
	s.stepIndex++
}

// Retreat moves the wizard backward one step. It is a no-op on the first
// step and on a completed session.
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed || s.stepIndex == 0 {
		return
	}
	s.stepIndex--
}

// SetContact stores the buyer's contact and address fields
func (s *Session) SetContact(info ContactInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = info
}

// Contact returns the buyer's contact and address fields
func (s *Session) Contact() ContactInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contact
}

// SelectShippingMethod switches the session to one of the three fixed
// shipping options
func (s *Session) SelectShippingMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rules.MethodPrice(id, decimal.Zero); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownShippingMethod, id)
	}
	s.shippingMethod = id
	return nil
}

// ShippingMethodID returns the currently selected shipping method
func (s *Session) ShippingMethodID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shippingMethod
}

// Summary returns the pricing breakdown for the current cart and selected
// shipping method. After completion it reflects the placed order's empty
// cart; use Order for the final amounts.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Session) summary() Summary {
	subtotal := s.ledger.Totals().Subtotal
	shipping, _ := s.rules.MethodPrice(s.shippingMethod, subtotal)
	tax := s.rules.Tax(subtotal)

	var method pricing.ShippingMethod
	for _, m := range s.rules.Methods(subtotal) {
		if m.ID == s.shippingMethod {
			method = m
			break
		}
	}

	return Summary{
		Subtotal:       subtotal,
		Shipping:       shipping,
		Tax:            tax,
		Total:          subtotal.Add(shipping).Add(tax),
		ShippingMethod: method,
	}
}

// Completed reports whether the order has been placed
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Order returns the confirmation of a placed order, or nil before completion
func (s *Session) Order() *OrderConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// placeOrder finalizes the session: the total is locked in from the current
// summary, the ledger is emptied and the session becomes terminal.
func (s *Session) placeOrder() {
	final := s.summary()

	s.order = &OrderConfirmation{
		OrderNumber: generateOrderNumber(),
		PlacedAt:    time.Now().UTC(),
		Total:       final.Total,
	}

	s.ledger.Clear()
	s.completed = true
}

// generateOrderNumber produces an order reference in the
// ORD-YYYYMMDD-XXXXXXXX format
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
