package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/akozyrev/storepay/internal/adapter/storage"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PromoRepository struct {
	db *storage.DB
}

func NewPromoRepository(db *storage.DB) (*PromoRepository, error) {
	return &PromoRepository{db: db}, nil
}

func (r *PromoRepository) GetPromo(ctx context.Context, code string) (*domain.Promo, error) {
	statement := r.db.QueryBuilder.
		Select("code", "type", "value", "active", "expires_at",
			"max_uses", "per_user_limit", "allowed_products").
		From("promos").
		Where(sq.Eq{"code": normalizeCode(code)})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	promo := domain.Promo{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&promo.Code,
		&promo.Type,
		&promo.Value,
		&promo.Active,
		&promo.ExpiresAt,
		&promo.MaxUses,
		&promo.PerUserLimit,
		&promo.AllowedProducts,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &promo, nil
}

func (r *PromoRepository) GetUsage(ctx context.Context, code string) (*domain.PromoUsage, error) {
	statement := r.db.QueryBuilder.
		Select("user_id").
		From("promo_usages").
		Where(sq.Eq{"promo_code": normalizeCode(code)})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := domain.PromoUsage{ByUser: make(map[int64]int64)}
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		usage.TotalUses++
		usage.ByUser[userID]++
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &usage, nil
}

func (r *PromoRepository) RecordUsage(ctx context.Context, code string, userID int64) error {
	statement := r.db.QueryBuilder.Insert("promo_usages").
		Columns("promo_code", "user_id").
		Values(normalizeCode(code), userID)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrPromoNotFound
		}
		return err
	}

	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
