package domain

import "github.com/govalues/decimal"

// TransferNotification is an observed on-chain transfer reported by the
// payment-watching service. Its source authentication is handled before the
// reconciliation engine sees it.
type TransferNotification struct {
	FromAddress string
	Amount      decimal.Decimal
	TxHash      string
}

// Validate checks the notification carries everything reconciliation needs.
func (n TransferNotification) Validate() error {
	if n.FromAddress == "" || n.TxHash == "" || !n.Amount.IsPos() {
		return ErrNotificationInvalid
	}
	return nil
}

type MatchStatus string

const (
	// MatchNone - nothing to settle: bad input, no candidate order, or a
	// storage failure (reconciliation never raises).
	MatchNone MatchStatus = "no_match"
	// MatchConfirmed - exactly one pending order was transitioned to paid.
	MatchConfirmed MatchStatus = "matched"
	// MatchAlreadyProcessed - a candidate was found but was no longer pending,
	// e.g. a replayed notification for a settled order.
	MatchAlreadyProcessed MatchStatus = "already_processed"
)

// MatchResult is the typed outcome of reconciling one notification.
type MatchResult struct {
	Status     MatchStatus
	TradeNo    string
	CallbackNo string
}
