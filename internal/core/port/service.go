package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/usdtgate/usdtgate/internal/core/domain"
)

type Service interface {
	CreatePayment(ctx context.Context, tradeNo string, basePrice decimal.Decimal) (*domain.PaymentInstructions, error)
	GetOrder(ctx context.Context, tradeNo string) (*domain.Order, error)
	// Reconcile matches a transfer notification to at most one pending order.
	// It never fails: every error path collapses into a no-match result.
	Reconcile(ctx context.Context, notification domain.TransferNotification) domain.MatchResult
}
