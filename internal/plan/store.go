package plan

import "sync"

// Store keeps active plans in memory, keyed by plan id.
// Plans are short-lived working state, not durable records.
type Store struct {
	mu    sync.RWMutex
	plans map[string]*Plan
}

// NewStore creates an empty plan store.
func NewStore() *Store {
	return &Store{plans: make(map[string]*Plan)}
}

// Put saves or replaces a plan.
func (s *Store) Put(p *Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[p.ID] = p
}

// Get returns the plan with the given id.
func (s *Store) Get(id string) (*Plan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[id]
	return p, ok
}

// Delete removes a plan.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plans, id)
}
