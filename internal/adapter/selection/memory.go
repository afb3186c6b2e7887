// Package selection keeps the transient per-buyer checkout selection.
// An injectable store rather than a process-wide map, so tests can swap it.
package selection

import (
	"sync"

	"github.com/akozyrev/storepay/internal/core/domain"
)

type MemoryStore struct {
	mu         sync.RWMutex
	selections map[int64]*domain.Selection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{selections: make(map[int64]*domain.Selection)}
}

func (s *MemoryStore) Put(buyerID int64, sel *domain.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[buyerID] = sel
}

func (s *MemoryStore) Get(buyerID int64) (*domain.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[buyerID]
	return sel, ok
}

func (s *MemoryStore) Remove(buyerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, buyerID)
}
