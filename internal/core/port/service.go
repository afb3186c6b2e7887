package port

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
)

// CheckoutRequest starts a payment attempt for one product by one buyer.
type CheckoutRequest struct {
	BuyerID       int64
	BuyerUsername string
	ProductID     string
	Method        domain.PaymentMethod
	// Asset is the settlement asset for crypto payments, e.g. "USDT".
	Asset string
}

// CheckoutResult is what the buyer needs to pay.
type CheckoutResult struct {
	OrderID  string
	TicketID string
	PayURL   string
	Amount   string
	Asset    string
	PriceRUB int64
}

// SelectionRequest applies a promo code and/or bonus spend to a product
// before a payment method is picked.
type SelectionRequest struct {
	BuyerID    int64
	ProductID  string
	PromoCode  string
	BonusSpent int64
}

type Service interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	ApplySelection(ctx context.Context, req SelectionRequest) (*domain.Selection, error)
	ClearSelection(ctx context.Context, buyerID int64)

	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
	RequeueOrder(ctx context.Context, orderID string) error

	GetUserProfile(ctx context.Context, userID int64) (*domain.User, error)
	SetReferrer(ctx context.Context, userID, referrerID int64) (bool, error)
}

// PaymentObserver is invoked by the two status-observation paths. Each call
// is safe under concurrent delivery: the order store's conditional update
// decides the single winner, every other caller no-ops.
type PaymentObserver interface {
	// ConfirmPayment runs the finalization pipeline iff this observation
	// wins the pending -> paid transition.
	ConfirmPayment(ctx context.Context, providerTxID string) error
	// CancelPayment marks the order expired and informs the buyer.
	CancelPayment(ctx context.Context, providerTxID string) error
	// TimeoutPayment gives up active polling without touching order state:
	// the payment may still be confirmed asynchronously later.
	TimeoutPayment(ctx context.Context, providerTxID string) error
}

// ReconcileScheduler feeds the polling path.
type ReconcileScheduler interface {
	Schedule(providerTxID string, method domain.PaymentMethod)
}
