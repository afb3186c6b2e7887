package port

import (
	"context"

	"github.com/akozyrev/storepay/internal/core/domain"
)

// OrderRepository is the authoritative store of payment attempts. TryMarkPaid
// and TryMarkExpired are the idempotency guard: single conditional updates,
// never read-then-write, because the polling loop and the webhook path invoke
// them concurrently for the same order.
type OrderRepository interface {
	// CreateOrder inserts a pending order. A duplicate id is a silent no-op
	// so retried creation calls never produce a second row.
	CreateOrder(ctx context.Context, order *domain.Order) error
	// TryMarkPaid flips pending -> paid and reports whether this call
	// performed the transition. Paid and expired orders are left untouched.
	TryMarkPaid(ctx context.Context, orderID string) (bool, error)
	// TryMarkExpired flips pending -> expired; a paid order can never
	// become expired.
	TryMarkExpired(ctx context.Context, orderID string) (bool, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ReadOrderByTxID(ctx context.Context, providerTxID string) (*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
}

type UserRepository interface {
	UpsertUser(ctx context.Context, user *domain.User) error
	ReadUser(ctx context.Context, userID int64) (*domain.User, error)
	// AddPurchase increments the purchase count and adds amount to the
	// spend total in a single statement.
	AddPurchase(ctx context.Context, userID int64, amount int64) error
	// DebitBonus subtracts up to amount from the bonus balance, clamped so
	// the balance never goes negative, and returns the amount actually
	// debited.
	DebitBonus(ctx context.Context, userID int64, amount int64) (int64, error)
	CreditBonus(ctx context.Context, userID int64, amount int64) error
	// TrySetReferrer sets the referrer once, only before the user's first
	// purchase and never to the user themselves.
	TrySetReferrer(ctx context.Context, userID int64, referrerID int64) (bool, error)
	CountInvited(ctx context.Context, referrerID int64) (int64, error)
}

type PromoRepository interface {
	GetPromo(ctx context.Context, code string) (*domain.Promo, error)
	GetUsage(ctx context.Context, code string) (*domain.PromoUsage, error)
	RecordUsage(ctx context.Context, code string, userID int64) error
}

// PendingOrders maps a provider transaction id to the order metadata needed
// to finalize without a store read. Durable: the store remains the source of
// truth, the cache is an optimization consulted first.
type PendingOrders interface {
	Put(ctx context.Context, txID string, order *domain.PendingOrder) error
	Get(ctx context.Context, txID string) (*domain.PendingOrder, error)
	Remove(ctx context.Context, txID string) error
}

// SelectionStore holds the transient per-buyer checkout selection.
type SelectionStore interface {
	Put(buyerID int64, sel *domain.Selection)
	Get(buyerID int64) (*domain.Selection, bool)
	Remove(buyerID int64)
}

// Catalog is the external read-only product catalog.
type Catalog interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}
