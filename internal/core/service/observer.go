package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akozyrev/storepay/internal/core/domain"
	"go.uber.org/zap"
)

// resolveMeta finds the finalization metadata for a provider transaction:
// the pending-order cache is the fast path, the order store the fallback
// (a restart may have emptied the cache, never the store).
func (s *Service) resolveMeta(ctx context.Context, providerTxID string) (*domain.PendingOrder, error) {
	meta, err := s.pending.Get(ctx, providerTxID)
	if err == nil {
		return meta, nil
	}
	if !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Warn("Pending cache read", zap.Error(err))
	}

	order, err := s.orders.ReadOrderByTxID(ctx, providerTxID)
	if err != nil {
		return nil, err
	}

	return &domain.PendingOrder{
		OrderID:       order.ID,
		TicketID:      order.TicketID,
		BuyerID:       order.BuyerID,
		BuyerUsername: order.BuyerUsername,
		ProductID:     order.ProductID,
		PromoCode:     order.PromoCode,
		BonusSpent:    order.BonusSpent,
		FinalPrice:    order.FinalPrice,
		Method:        order.Method,
		CreatedAt:     order.CreatedAt,
	}, nil
}

// ConfirmPayment is called by both observation paths on a freshly observed
// CONFIRMED. The conditional update in the store picks the single winner;
// the loser finds the transition already performed and does nothing.
func (s *Service) ConfirmPayment(ctx context.Context, providerTxID string) error {
	meta, err := s.resolveMeta(ctx, providerTxID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// unknown transaction: nothing to do, delivery was already acked
			s.logger.Warn("Confirmed payment for unknown transaction",
				zap.String("tx", providerTxID))
			return nil
		}
		return err
	}

	won, err := s.orders.TryMarkPaid(ctx, meta.OrderID)
	if err != nil {
		// could not confirm ownership of finalization: no side effects,
		// the next observation retries
		return fmt.Errorf("marking order %s paid: %w", meta.OrderID, err)
	}

	if !won {
		s.reportLateConfirmation(ctx, meta)
		if err := s.pending.Remove(ctx, providerTxID); err != nil {
			s.logger.Warn("Remove pending order", zap.Error(err))
		}
		return nil
	}

	s.finalize(ctx, meta)

	if err := s.pending.Remove(ctx, providerTxID); err != nil {
		s.logger.Warn("Remove pending order", zap.Error(err))
	}

	return nil
}

// reportLateConfirmation handles a CONFIRMED observed for an order some other
// path already closed. For an expired order this means real money arrived
// after the link was written off: staff reconcile that by hand, the ledger is
// never touched automatically.
func (s *Service) reportLateConfirmation(ctx context.Context, meta *domain.PendingOrder) {
	order, err := s.orders.ReadOrder(ctx, meta.OrderID)
	if err != nil || order.Status != domain.OrderStatusExpired {
		return
	}

	s.logger.Error("Confirmed payment for expired order, manual reconciliation required",
		zap.String("order", meta.OrderID), zap.String("ticket", meta.TicketID))
	s.notifier.NotifyStaff(ctx, lateConfirmationText(meta))
}

// CancelPayment marks the order expired on a terminal CANCELED/CHARGEBACK.
// A paid order is never downgraded.
func (s *Service) CancelPayment(ctx context.Context, providerTxID string) error {
	meta, err := s.resolveMeta(ctx, providerTxID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		return err
	}

	won, err := s.orders.TryMarkExpired(ctx, meta.OrderID)
	if err != nil {
		return fmt.Errorf("marking order %s expired: %w", meta.OrderID, err)
	}

	if won {
		if err := s.notifier.NotifyBuyer(ctx, meta.BuyerID, paymentCanceledText(meta)); err != nil {
			s.logger.Warn("Notify buyer", zap.Error(err))
		}
	}

	if err := s.pending.Remove(ctx, providerTxID); err != nil {
		s.logger.Warn("Remove pending order", zap.Error(err))
	}

	return nil
}

// TimeoutPayment ends active polling without touching order state: the buyer
// may still have paid, and the provider's push callback can confirm later.
func (s *Service) TimeoutPayment(ctx context.Context, providerTxID string) error {
	meta, err := s.resolveMeta(ctx, providerTxID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil
		}
		return err
	}

	if err := s.pending.Remove(ctx, providerTxID); err != nil {
		s.logger.Warn("Remove pending order", zap.Error(err))
	}

	if err := s.notifier.NotifyBuyer(ctx, meta.BuyerID, paymentTimeoutText(meta)); err != nil {
		s.logger.Warn("Notify buyer", zap.Error(err))
	}

	return nil
}
