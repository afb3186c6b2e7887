package jsonstore

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
)

const pendingFile = "pending_orders.json"

// PendingStore is the JSON tier of the pending-order cache, keyed by
// provider transaction id.
type PendingStore struct {
	store *Store
}

func NewPendingStore(store *Store) *PendingStore {
	return &PendingStore{store: store}
}

func (s *PendingStore) Put(ctx context.Context, txID string, order *domain.PendingOrder) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	pending := map[string]*domain.PendingOrder{}
	if err := s.store.readFile(pendingFile, &pending); err != nil {
		return err
	}

	// first write wins, as in the database tier
	if _, ok := pending[txID]; ok {
		return nil
	}

	pending[txID] = order
	return s.store.writeFile(pendingFile, pending)
}

func (s *PendingStore) Get(ctx context.Context, txID string) (*domain.PendingOrder, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	pending := map[string]*domain.PendingOrder{}
	if err := s.store.readFile(pendingFile, &pending); err != nil {
		return nil, err
	}

	order, ok := pending[txID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	return order, nil
}

func (s *PendingStore) Remove(ctx context.Context, txID string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	pending := map[string]*domain.PendingOrder{}
	if err := s.store.readFile(pendingFile, &pending); err != nil {
		return err
	}

	if _, ok := pending[txID]; !ok {
		return nil
	}

	delete(pending, txID)
	return s.store.writeFile(pendingFile, pending)
}
