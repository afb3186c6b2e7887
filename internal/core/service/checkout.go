package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/akozyrev/storepay/internal/core/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCryptoAsset = "USDT"

// ApplySelection captures the buyer's promo/bonus choice for a product.
// Amounts fixed here are what finalization later works with: they are not
// re-derived from live balances at payment time.
func (s *Service) ApplySelection(ctx context.Context, req port.SelectionRequest) (*domain.Selection, error) {
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	sel := domain.Selection{
		ProductID:  product.ID,
		FinalPrice: product.PriceRUB,
	}

	if req.PromoCode != "" {
		applied, err := s.ApplyPromo(ctx, req.PromoCode, req.BuyerID, product)
		if err != nil {
			return nil, err
		}
		sel.PromoCode = applied.Code
		sel.Discount = applied.Discount
		sel.FinalPrice = applied.FinalPrice
	}

	if req.BonusSpent > 0 {
		bonus := req.BonusSpent
		user, err := s.users.ReadUser(ctx, req.BuyerID)
		switch {
		case errors.Is(err, domain.ErrDataNotFound):
			// no ledger row means no bonus to spend
			bonus = 0
		case err != nil:
			return nil, fmt.Errorf("reading buyer balance: %w", err)
		case bonus > user.BonusBalance:
			bonus = user.BonusBalance
		}
		// bonus is also bounded by the pre-discount price
		if bonus > product.PriceRUB {
			bonus = product.PriceRUB
		}
		sel.BonusSpent = bonus
		sel.FinalPrice -= bonus
		if sel.FinalPrice < 0 {
			sel.FinalPrice = 0
		}
	}

	s.selections.Put(req.BuyerID, &sel)

	return &sel, nil
}

func (s *Service) ClearSelection(ctx context.Context, buyerID int64) {
	s.selections.Remove(buyerID)
}

// CreateCheckout creates a pending order and a payable link for it, then
// hands the provider transaction to the polling path. Creation is idempotent
// at the store level, so a retried call cannot produce a second row.
func (s *Service) CreateCheckout(ctx context.Context, req port.CheckoutRequest) (*port.CheckoutResult, error) {
	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	provider, ok := s.providers[req.Method]
	if !ok {
		return nil, domain.ErrUnknownPaymentMethod
	}

	if err := s.users.UpsertUser(ctx, &domain.User{
		ID:       req.BuyerID,
		Username: req.BuyerUsername,
	}); err != nil {
		s.logger.Warn("Track buyer", zap.Error(err))
	}

	meta := domain.PendingOrder{
		TicketID:      utils.NewTicketID(),
		BuyerID:       req.BuyerID,
		BuyerUsername: req.BuyerUsername,
		ProductID:     product.ID,
		FinalPrice:    product.PriceRUB,
		Method:        req.Method,
		CreatedAt:     time.Now().UTC(),
	}

	if sel, ok := s.selections.Get(req.BuyerID); ok && sel.ProductID == product.ID {
		meta.PromoCode = sel.PromoCode
		meta.BonusSpent = sel.BonusSpent
		meta.FinalPrice = sel.FinalPrice
	}

	asset := "RUB"
	if req.Method == domain.PaymentMethodCrypto {
		// crypto order ids are ours; bank-transfer ids come from the provider
		meta.OrderID = uuid.NewString()
		asset = req.Asset
		if asset == "" {
			asset = defaultCryptoAsset
		}
	}

	payload, err := json.Marshal(&meta)
	if err != nil {
		return nil, fmt.Errorf("encoding payment payload: %w", err)
	}

	created, err := provider.CreatePayment(ctx, domain.PaymentRequest{
		AmountRUB:   meta.FinalPrice,
		Asset:       asset,
		Description: product.Title,
		Payload:     string(payload),
	})
	if err != nil {
		s.logger.Error("Create payment", zap.Error(err),
			zap.String("method", string(req.Method)), zap.Int64("buyer", req.BuyerID))
		return nil, domain.ErrPaymentCreateFailed
	}

	if meta.OrderID == "" {
		meta.OrderID = created.ProviderTxID
	}

	if err := s.pending.Put(ctx, created.ProviderTxID, &meta); err != nil {
		// the store below remains the fallback metadata source
		s.logger.Warn("Cache pending order", zap.Error(err))
	}

	order := domain.Order{
		ID:            meta.OrderID,
		ProviderTxID:  created.ProviderTxID,
		TicketID:      meta.TicketID,
		BuyerID:       meta.BuyerID,
		BuyerUsername: meta.BuyerUsername,
		ProductID:     meta.ProductID,
		PromoCode:     meta.PromoCode,
		BonusSpent:    meta.BonusSpent,
		FinalPrice:    meta.FinalPrice,
		Method:        req.Method,
		Status:        domain.OrderStatusPending,
		CreatedAt:     meta.CreatedAt,
	}
	if err := s.orders.CreateOrder(ctx, &order); err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.scheduler.Schedule(created.ProviderTxID, req.Method)

	return &port.CheckoutResult{
		OrderID:  order.ID,
		TicketID: order.TicketID,
		PayURL:   created.PayURL,
		Amount:   created.Amount,
		Asset:    created.Asset,
		PriceRUB: order.FinalPrice,
	}, nil
}
