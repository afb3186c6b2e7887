package port

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/govalues/decimal"
)

// PaymentProvider is the capability shape shared by the bank-transfer and
// crypto-invoice clients. GetStatus errors are transient from the caller's
// perspective: the reconciler treats any failure as "try again later".
type PaymentProvider interface {
	CreatePayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentCreated, error)
	GetStatus(ctx context.Context, providerTxID string) (*domain.ProviderStatusResult, error)
}

// RateConverter converts an amount between a reference currency and a
// settlement asset.
type RateConverter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}
