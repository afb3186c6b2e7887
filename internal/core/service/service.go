package service

import (
	"context"
	"errors"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"go.uber.org/zap"
)

// bonusRewardPercent of the final price is credited to the buyer (and to the
// referrer, when one is set) on every finalized purchase.
const bonusRewardPercent = 10

type Service struct {
	orders     port.OrderRepository
	users      port.UserRepository
	promos     port.PromoRepository
	pending    port.PendingOrders
	selections port.SelectionStore
	catalog    port.Catalog
	providers  map[domain.PaymentMethod]port.PaymentProvider
	notifier   port.Notifier
	tickets    port.TicketPublisher
	scheduler  port.ReconcileScheduler
	logger     *zap.Logger
}

type Deps struct {
	Orders     port.OrderRepository
	Users      port.UserRepository
	Promos     port.PromoRepository
	Pending    port.PendingOrders
	Selections port.SelectionStore
	Catalog    port.Catalog
	Providers  map[domain.PaymentMethod]port.PaymentProvider
	Notifier   port.Notifier
	// Tickets is optional; when nil, tickets go to chat only.
	Tickets   port.TicketPublisher
	Scheduler port.ReconcileScheduler
}

func NewService(deps Deps, logger *zap.Logger) (*Service, error) {
	return &Service{
		orders:     deps.Orders,
		users:      deps.Users,
		promos:     deps.Promos,
		pending:    deps.Pending,
		selections: deps.Selections,
		catalog:    deps.Catalog,
		providers:  deps.Providers,
		notifier:   deps.Notifier,
		tickets:    deps.Tickets,
		scheduler:  deps.Scheduler,
		logger:     logger,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.ReadOrder(ctx, orderID)
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.orders.ListOrdersByStatus(ctx, status)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// RequeueOrder puts a still-pending order back on the polling path. Used by
// staff when a payment looks stuck.
func (s *Service) RequeueOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.ReadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.OrderStatusPending {
		return domain.ErrBadRequest
	}

	s.scheduler.Schedule(order.ProviderTxID, order.Method)
	return nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.ReadUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Read user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	invited, err := s.users.CountInvited(ctx, userID)
	if err != nil {
		s.logger.Warn("Count invited users", zap.Error(err))
	}
	user.InvitedCount = invited

	return user, nil
}

func (s *Service) SetReferrer(ctx context.Context, userID, referrerID int64) (bool, error) {
	return s.users.TrySetReferrer(ctx, userID, referrerID)
}
