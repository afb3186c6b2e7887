package service

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
	"go.uber.org/zap"
)

// finalize runs the side-effect sequence for a freshly paid order. The caller
// holds the sole right to run it (TryMarkPaid returned true), so every step
// is best-effort: failures are logged and the next step still runs. A
// duplicate notification is preferable to a lost one; the guard already rules
// out a duplicate pipeline.
func (s *Service) finalize(ctx context.Context, meta *domain.PendingOrder) {
	log := s.logger.With(
		zap.String("order", meta.OrderID),
		zap.String("ticket", meta.TicketID),
		zap.Int64("buyer", meta.BuyerID))

	log.Info("Finalizing paid order")

	if meta.BonusSpent > 0 {
		debited, err := s.users.DebitBonus(ctx, meta.BuyerID, meta.BonusSpent)
		if err != nil {
			log.Error("Debit bonus", zap.Error(err))
		} else if debited < meta.BonusSpent {
			// balance shrank between selection and finalization
			log.Error("Bonus debit came up short, manual review required",
				zap.Int64("requested", meta.BonusSpent), zap.Int64("debited", debited))
			s.notifier.NotifyStaff(ctx, shortDebitText(meta, debited))
		}
	}

	if err := s.users.AddPurchase(ctx, meta.BuyerID, meta.FinalPrice); err != nil {
		log.Error("Record purchase", zap.Error(err))
	}

	reward := meta.FinalPrice * bonusRewardPercent / 100
	if reward > 0 {
		if err := s.users.CreditBonus(ctx, meta.BuyerID, reward); err != nil {
			log.Error("Credit bonus reward", zap.Error(err))
		}

		if user, err := s.users.ReadUser(ctx, meta.BuyerID); err != nil {
			log.Error("Read buyer for referral", zap.Error(err))
		} else if user.ReferrerID != nil {
			if err := s.users.CreditBonus(ctx, *user.ReferrerID, reward); err != nil {
				log.Error("Credit referrer reward",
					zap.Int64("referrer", *user.ReferrerID), zap.Error(err))
			}
		}
	}

	if meta.PromoCode != "" {
		if err := s.promos.RecordUsage(ctx, meta.PromoCode, meta.BuyerID); err != nil {
			log.Error("Record promo usage", zap.String("promo", meta.PromoCode), zap.Error(err))
		}
	}

	s.selections.Remove(meta.BuyerID)

	title := meta.ProductID
	if product, err := s.catalog.GetProduct(ctx, meta.ProductID); err == nil {
		title = product.Title
	}

	if err := s.notifier.NotifyBuyer(ctx, meta.BuyerID, purchaseDoneText(meta, title)); err != nil {
		log.Error("Notify buyer", zap.Error(err))
	}

	s.notifier.NotifyStaff(ctx, newPaymentText(meta, title))

	ticket := &domain.Ticket{
		ID:            meta.TicketID,
		ProductTitle:  title,
		Amount:        formatRUB(meta.FinalPrice),
		Asset:         "RUB",
		PriceRUB:      meta.FinalPrice,
		BuyerID:       meta.BuyerID,
		BuyerUsername: meta.BuyerUsername,
		PromoCode:     meta.PromoCode,
		BonusSpent:    meta.BonusSpent,
	}

	if err := s.notifier.SendTicket(ctx, ticket); err != nil {
		log.Error("Send ticket", zap.Error(err))
	}

	if s.tickets != nil {
		if err := s.tickets.PublishTicket(ctx, ticket); err != nil {
			log.Error("Publish ticket", zap.Error(err))
		}
	}

	log.Info("Order finalized")
}
