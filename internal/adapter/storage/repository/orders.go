package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/akozyrev/storepay/internal/adapter/storage"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) (*OrderRepository, error) {
	return &OrderRepository{db: db}, nil
}

var orderColumns = []string{
	"order_id", "provider_tx_id", "ticket_id", "user_id", "username",
	"product_id", "promo_code", "bonus_spent", "final_price_rub",
	"payment_method", "status", "created_at",
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.ProviderTxID, order.TicketID, order.BuyerID,
			nullable(order.BuyerUsername), order.ProductID, nullable(order.PromoCode),
			order.BonusSpent, order.FinalPrice, order.Method, order.Status, order.CreatedAt).
		Suffix("ON CONFLICT (order_id) DO NOTHING")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

// TryMarkPaid is the idempotency guard: a single conditional update, so that
// of two concurrent observers exactly one sees a row change. Only a pending
// order can become paid; an expired one stays expired.
func (r *OrderRepository) TryMarkPaid(ctx context.Context, orderID string) (bool, error) {
	return r.tryTransition(ctx, orderID, domain.OrderStatusPaid)
}

// TryMarkExpired flips pending -> expired; a paid order is never downgraded.
func (r *OrderRepository) TryMarkExpired(ctx context.Context, orderID string) (bool, error) {
	return r.tryTransition(ctx, orderID, domain.OrderStatusExpired)
}

func (r *OrderRepository) tryTransition(ctx context.Context, orderID string, to domain.OrderStatus) (bool, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("status", to).
		Where(sq.Eq{"order_id": orderID, "status": domain.OrderStatusPending})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return r.readOrderWhere(ctx, sq.Eq{"order_id": orderID})
}

func (r *OrderRepository) ReadOrderByTxID(ctx context.Context, providerTxID string) (*domain.Order, error) {
	return r.readOrderWhere(ctx, sq.Eq{"provider_tx_id": providerTxID})
}

func (r *OrderRepository) readOrderWhere(ctx context.Context, where sq.Eq) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *OrderRepository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": status}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var username, promoCode *string

	err := row.Scan(
		&order.ID,
		&order.ProviderTxID,
		&order.TicketID,
		&order.BuyerID,
		&username,
		&order.ProductID,
		&promoCode,
		&order.BonusSpent,
		&order.FinalPrice,
		&order.Method,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if username != nil {
		order.BuyerUsername = *username
	}
	if promoCode != nil {
		order.PromoCode = *promoCode
	}

	return &order, nil
}

// nullable stores an empty string as NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
