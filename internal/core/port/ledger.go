package port

import (
	"context"
	"time"

	"github.com/govalues/decimal"
	"github.com/usdtgate/usdtgate/internal/core/domain"
)

// Ledger persists payment orders keyed by trade number.
type Ledger interface {
	// CreateOrder inserts a pending order unless a row for its trade number
	// already exists, in which case it returns domain.ErrConflictingData.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, tradeNo string) (*domain.Order, error)
	// FindPendingByAmount returns the pending order created within window whose
	// amount differs from the given one by strictly less than tolerance.
	// Candidates are ranked by smallest difference, then earliest creation.
	// Returns domain.ErrDataNotFound when no candidate qualifies.
	FindPendingByAmount(ctx context.Context, amount, tolerance decimal.Decimal, window time.Duration) (*domain.Order, error)
	// MarkPaid transitions a still-pending order to paid, recording the
	// transaction hash and timestamp. Reports whether the row was transitioned.
	MarkPaid(ctx context.Context, tradeNo string, txHash string, paidAt time.Time) (bool, error)
}
