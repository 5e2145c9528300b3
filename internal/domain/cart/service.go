// internal/domain/cart/service.go
package cart

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Service hands out one ledger per storefront session. A session's ledger is
// rehydrated from the store the first time it is requested and kept in
// memory afterwards, so rehydration happens exactly once per session
// lifetime.
type Service struct {
	store  Store
	rules  pricing.Rules
	logger *logrus.Logger

	mu      sync.Mutex
	ledgers map[string]*Ledger
}

// NewService creates a cart service backed by the given blob store
func NewService(store Store, rules pricing.Rules, logger *logrus.Logger) *Service {
	return &Service{
		store:   store,
		rules:   rules,
		logger:  logger,
		ledgers: make(map[string]*Ledger),
	}
}

// Ledger returns the ledger owned by a session, creating and rehydrating it
// on first access
func (s *Service) Ledger(sessionID string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.ledgers[sessionID]; ok {
		return l
	}

	l := NewLedger(cartKey(sessionID), s.store, s.rules, s.logger)
	s.ledgers[sessionID] = l
	return l
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
