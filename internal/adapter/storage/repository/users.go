package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/akozyrev/storepay/internal/adapter/storage"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db *storage.DB
}

func NewUserRepository(db *storage.DB) (*UserRepository, error) {
	return &UserRepository{db: db}, nil
}

func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	statement := r.db.QueryBuilder.Insert("users").
		Columns("id", "username", "first_name", "last_name", "first_seen", "last_seen").
		Values(user.ID, nullable(user.Username), nullable(user.FirstName),
			nullable(user.LastName), sq.Expr("now()"), sq.Expr("now()")).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET username = EXCLUDED.username,
			    first_name = EXCLUDED.first_name,
			    last_name = EXCLUDED.last_name,
			    last_seen = now()`)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) ReadUser(ctx context.Context, userID int64) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "username", "first_name", "last_name", "first_seen", "last_seen",
			"total_purchases", "total_spent_rub", "bonus_balance", "referrer_id").
		From("users").
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	var username, firstName, lastName *string

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&username,
		&firstName,
		&lastName,
		&user.FirstSeen,
		&user.LastSeen,
		&user.TotalPurchases,
		&user.TotalSpent,
		&user.BonusBalance,
		&user.ReferrerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if username != nil {
		user.Username = *username
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}

	return &user, nil
}

func (r *UserRepository) AddPurchase(ctx context.Context, userID int64, amount int64) error {
	statement := r.db.QueryBuilder.Update("users").
		Set("total_purchases", sq.Expr("total_purchases + 1")).
		Set("total_spent_rub", sq.Expr("total_spent_rub + ?", amount)).
		Set("last_seen", sq.Expr("now()")).
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}

// DebitBonus subtracts at most the current balance in a single statement and
// returns how much was actually taken. Finalization re-derives amounts from
// order-creation state, so the live balance may have shrunk in the meantime.
func (r *UserRepository) DebitBonus(ctx context.Context, userID int64, amount int64) (int64, error) {
	sql := `
		WITH prev AS (
			SELECT bonus_balance FROM users WHERE id = $1 FOR UPDATE
		)
		UPDATE users
		SET bonus_balance = GREATEST(users.bonus_balance - $2, 0)
		FROM prev
		WHERE users.id = $1
		RETURNING prev.bonus_balance - users.bonus_balance`

	var debited int64
	err := r.db.QueryRow(ctx, sql, userID, amount).Scan(&debited)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrDataNotFound
		}
		return 0, err
	}

	return debited, nil
}

func (r *UserRepository) CreditBonus(ctx context.Context, userID int64, amount int64) error {
	statement := r.db.QueryBuilder.Update("users").
		Set("bonus_balance", sq.Expr("bonus_balance + ?", amount)).
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}

// TrySetReferrer binds a referrer once, only while the user has no purchases.
func (r *UserRepository) TrySetReferrer(ctx context.Context, userID int64, referrerID int64) (bool, error) {
	if userID == referrerID {
		return false, nil
	}

	statement := r.db.QueryBuilder.Update("users").
		Set("referrer_id", referrerID).
		Where(sq.Eq{"id": userID, "total_purchases": 0}).
		Where("referrer_id IS NULL")

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

func (r *UserRepository) CountInvited(ctx context.Context, referrerID int64) (int64, error) {
	statement := r.db.QueryBuilder.
		Select("count(*)").
		From("users").
		Where(sq.Eq{"referrer_id": referrerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
