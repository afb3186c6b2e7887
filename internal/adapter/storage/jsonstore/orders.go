package jsonstore

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
)

const ordersFile = "orders.json"

type OrderStore struct {
	store *Store
}

func NewOrderStore(store *Store) *OrderStore {
	return &OrderStore{store: store}
}

func (s *OrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := map[string]*domain.Order{}
	if err := s.store.readFile(ordersFile, &orders); err != nil {
		return err
	}

	// duplicate id is a silent no-op, as with ON CONFLICT DO NOTHING
	if _, ok := orders[order.ID]; ok {
		return nil
	}

	orders[order.ID] = order
	return s.store.writeFile(ordersFile, orders)
}

func (s *OrderStore) TryMarkPaid(ctx context.Context, orderID string) (bool, error) {
	return s.tryTransition(orderID, domain.OrderStatusPaid)
}

func (s *OrderStore) TryMarkExpired(ctx context.Context, orderID string) (bool, error) {
	return s.tryTransition(orderID, domain.OrderStatusExpired)
}

// tryTransition mirrors the conditional UPDATE of the Postgres tier: the
// mutex makes check-and-set atomic within the process, which is the only
// writer of the JSON tier.
func (s *OrderStore) tryTransition(orderID string, to domain.OrderStatus) (bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := map[string]*domain.Order{}
	if err := s.store.readFile(ordersFile, &orders); err != nil {
		return false, err
	}

	order, ok := orders[orderID]
	if !ok || order.Status != domain.OrderStatusPending {
		return false, nil
	}

	order.Status = to
	if err := s.store.writeFile(ordersFile, orders); err != nil {
		return false, err
	}

	return true, nil
}

func (s *OrderStore) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := map[string]*domain.Order{}
	if err := s.store.readFile(ordersFile, &orders); err != nil {
		return nil, err
	}

	order, ok := orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	return order, nil
}

func (s *OrderStore) ReadOrderByTxID(ctx context.Context, providerTxID string) (*domain.Order, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := map[string]*domain.Order{}
	if err := s.store.readFile(ordersFile, &orders); err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ProviderTxID == providerTxID {
			return order, nil
		}
	}

	return nil, domain.ErrDataNotFound
}

func (s *OrderStore) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	orders := map[string]*domain.Order{}
	if err := s.store.readFile(ordersFile, &orders); err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for _, order := range orders {
		if order.Status == status {
			list = append(list, order)
		}
	}

	return list, nil
}
