package service

import (
	"context"
	"errors"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
)

// ValidatePromo checks a code against its activity flag, expiry, product
// allow-list and both usage limits.
func (s *Service) ValidatePromo(ctx context.Context, code string, userID int64, product *domain.Product) (*domain.Promo, error) {
	promo, err := s.promos.GetPromo(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, err
	}

	if !promo.Active {
		return nil, domain.ErrPromoInactive
	}
	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrPromoExpired
	}
	if !promo.AppliesTo(product.ID) {
		return nil, domain.ErrPromoWrongProduct
	}

	usage, err := s.promos.GetUsage(ctx, promo.Code)
	if err != nil {
		return nil, err
	}

	if promo.MaxUses != nil && usage.TotalUses >= *promo.MaxUses {
		return nil, domain.ErrPromoLimitReached
	}
	if promo.PerUserLimit != nil && usage.ByUser[userID] >= *promo.PerUserLimit {
		return nil, domain.ErrPromoAlreadyUsed
	}

	return promo, nil
}

// ApplyPromo computes the discount for a valid code, clamped to [0, price].
func (s *Service) ApplyPromo(ctx context.Context, code string, userID int64, product *domain.Product) (*domain.PromoApplied, error) {
	promo, err := s.ValidatePromo(ctx, code, userID, product)
	if err != nil {
		return nil, err
	}

	original := product.PriceRUB
	var discount int64
	switch promo.Type {
	case domain.PromoTypePercent:
		discount = original * promo.Value / 100
	case domain.PromoTypeFixed:
		discount = promo.Value
	}

	if discount < 0 {
		discount = 0
	}
	if discount > original {
		discount = original
	}

	return &domain.PromoApplied{
		Code:          promo.Code,
		OriginalPrice: original,
		Discount:      discount,
		FinalPrice:    original - discount,
	}, nil
}
