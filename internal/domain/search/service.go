// internal/domain/search/service.go
package search

import (
	"strings"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Snapshot is the observable search state of one session
type Snapshot struct {
	Query     string            `json:"query"`
	Results   []catalog.Product `json:"results"`
	Searching bool              `json:"searching"`
}

// sessionState tracks one session's pending and delivered search. The
// generation counter invalidates a scheduled lookup that has been superseded
// before its timer fired.
type sessionState struct {
	query      string
	results    []catalog.Product
	searching  bool
	timer      *time.Timer
	generation int
}

// Service implements search-as-you-type over the catalog. Each submitted
// query is executed after a debounce delay; submitting again cancels the
// pending lookup, so rapid typing can never deliver results out of order.
type Service struct {
	catalog *catalog.Service
	delay   time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionState
}

// NewService creates a search service with the given debounce delay
func NewService(cat *catalog.Service, delay time.Duration) *Service {
	return &Service{
		catalog:  cat,
		delay:    delay,
		sessions: make(map[string]*sessionState),
	}
}

// Submit records a session's query and schedules the catalog lookup after
// the debounce delay. A blank query cancels any pending lookup and clears
// the results immediately.
func (s *Service) Submit(sessionID, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[sessionID]
	if state == nil {
		state = &sessionState{}
		s.sessions[sessionID] = state
	}

	if state.timer != nil {
		state.timer.Stop()
		state.timer = nil
	}
	state.generation++
	state.query = query

	if strings.TrimSpace(query) == "" {
		state.results = nil
		state.searching = false
		return
	}

	state.searching = true
	generation := state.generation
	state.timer = time.AfterFunc(s.delay, func() {
		s.deliver(sessionID, generation, query)
	})
}

// deliver runs the catalog lookup for a scheduled search and publishes the
// results unless a newer submission has superseded it
func (s *Service) deliver(sessionID string, generation int, query string) {
	results := s.catalog.Search(query)

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[sessionID]
	if state == nil || state.generation != generation {
		return
	}

	state.results = results
	state.searching = false
	state.timer = nil
}

// State returns the session's current query, results and in-flight flag
func (s *Service) State(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[sessionID]
	if state == nil {
		return Snapshot{}
	}

	results := make([]catalog.Product, len(state.results))
	copy(results, state.results)

	return Snapshot{
		Query:     state.query,
		Results:   results,
		Searching: state.searching,
	}
}

// Clear resets the session's search, cancelling any pending lookup
func (s *Service) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.sessions[sessionID]
	if state == nil {
		return
	}

	if state.timer != nil {
		state.timer.Stop()
	}
	delete(s.sessions, sessionID)
}
