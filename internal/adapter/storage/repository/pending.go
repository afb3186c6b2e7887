package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/akozyrev/storepay/internal/adapter/storage"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PendingOrderRepository is the durable tier of the pending-order cache.
type PendingOrderRepository struct {
	db *storage.DB
}

func NewPendingOrderRepository(db *storage.DB) (*PendingOrderRepository, error) {
	return &PendingOrderRepository{db: db}, nil
}

func (r *PendingOrderRepository) Put(ctx context.Context, txID string, order *domain.PendingOrder) error {
	statement := r.db.QueryBuilder.Insert("pending_orders").
		Columns("provider_tx_id", "order_id", "ticket_id", "user_id", "username",
			"product_id", "promo_code", "bonus_spent", "final_price_rub",
			"payment_method", "created_at").
		Values(txID, order.OrderID, order.TicketID, order.BuyerID,
			nullable(order.BuyerUsername), order.ProductID, nullable(order.PromoCode),
			order.BonusSpent, order.FinalPrice, order.Method, order.CreatedAt).
		Suffix("ON CONFLICT (provider_tx_id) DO NOTHING")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

func (r *PendingOrderRepository) Get(ctx context.Context, txID string) (*domain.PendingOrder, error) {
	statement := r.db.QueryBuilder.
		Select("order_id", "ticket_id", "user_id", "username", "product_id",
			"promo_code", "bonus_spent", "final_price_rub", "payment_method", "created_at").
		From("pending_orders").
		Where(sq.Eq{"provider_tx_id": txID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.PendingOrder{}
	var username, promoCode *string

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.OrderID,
		&order.TicketID,
		&order.BuyerID,
		&username,
		&order.ProductID,
		&promoCode,
		&order.BonusSpent,
		&order.FinalPrice,
		&order.Method,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
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

func (r *PendingOrderRepository) Remove(ctx context.Context, txID string) error {
	statement := r.db.QueryBuilder.Delete("pending_orders").
		Where(sq.Eq{"provider_tx_id": txID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}
