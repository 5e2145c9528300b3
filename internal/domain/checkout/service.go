// internal/domain/checkout/service.go
package checkout

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Service manages one checkout session per storefront session. Sessions are
// held in memory only: a checkout that is abandoned or completed leaves
// nothing behind in the store.
type Service struct {
	cartService *cart.Service
	rules       pricing.Rules

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates a checkout service over the cart service
func NewService(cartService *cart.Service, rules pricing.Rules) *Service {
	return &Service{
		cartService: cartService,
		rules:       rules,
		sessions:    make(map[string]*Session),
	}
}

// Begin starts a fresh checkout for a session, replacing any session left
// over from an earlier attempt. The empty-cart guard applies here.
func (s *Service) Begin(sessionID string) (*Session, error) {
	ledger := s.cartService.Ledger(sessionID)

	session, err := NewSession(ledger, s.rules)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	return session, nil
}

// Current returns the in-progress (or completed) checkout session, if any
func (s *Service) Current(sessionID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	return session, ok
}

// Abandon discards the session's checkout, if any
func (s *Service) Abandon(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// ShippingMethods returns the method table priced for the session's current
// cart subtotal
func (s *Service) ShippingMethods(sessionID string) []pricing.ShippingMethod {
	subtotal := decimal.Zero
	if ledger := s.cartService.Ledger(sessionID); ledger != nil {
		subtotal = ledger.Totals().Subtotal
	}
	return s.rules.Methods(subtotal)
}
