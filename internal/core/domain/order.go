package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// Order is the unit of payment tracking. The trade number is assigned by the
// checkout before the gateway sees it; the amount carries the decimal mark and
// is immutable after creation.
type Order struct {
	TradeNo   string
	Amount    decimal.Decimal
	Status    OrderStatus
	TxHash    *string
	CreatedAt time.Time
	PaidAt    *time.Time
}
