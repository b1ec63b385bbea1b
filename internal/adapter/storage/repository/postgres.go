package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/usdtgate/usdtgate/internal/adapter/storage"
	"github.com/usdtgate/usdtgate/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("trade_no", "amount", "status", "created_at").
		Values(order.TradeNo, order.Amount, order.Status, order.CreatedAt).
		Suffix("ON CONFLICT (trade_no) DO NOTHING")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	ct, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.ErrConflictingData
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, tradeNo string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("trade_no", "amount", "status", "tx_hash", "created_at", "paid_at").
		From("orders").
		Where(sq.Eq{"trade_no": tradeNo})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.TradeNo,
		&order.Amount,
		&order.Status,
		&order.TxHash,
		&order.CreatedAt,
		&order.PaidAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// FindPendingByAmount picks the single best candidate: smallest absolute
// difference first, then the oldest, so concurrent orders within tolerance of
// each other settle deterministically.
func (r *Repository) FindPendingByAmount(ctx context.Context,
	amount, tolerance decimal.Decimal, window time.Duration) (*domain.Order, error) {
	cutoff := time.Now().Add(-window)

	statement := r.db.QueryBuilder.
		Select("trade_no", "amount", "status", "tx_hash", "created_at", "paid_at").
		From("orders").
		Where(sq.Eq{"status": domain.OrderStatusPending}).
		Where(sq.Gt{"created_at": cutoff}).
		Where(sq.Expr("abs(amount - ?) < ?", amount, tolerance)).
		OrderByClause("abs(amount - ?), created_at", amount).
		Limit(1)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.TradeNo,
		&order.Amount,
		&order.Status,
		&order.TxHash,
		&order.CreatedAt,
		&order.PaidAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &order, nil
}

// MarkPaid is the single conditional update guarding the at-most-once
// transition: the status predicate makes replays lose the race.
func (r *Repository) MarkPaid(ctx context.Context, tradeNo string, txHash string, paidAt time.Time) (bool, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("status", domain.OrderStatusPaid).
		Set("tx_hash", txHash).
		Set("paid_at", paidAt).
		Where(sq.Eq{"trade_no": tradeNo, "status": domain.OrderStatusPending})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	ct, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return ct.RowsAffected() == 1, nil
}
