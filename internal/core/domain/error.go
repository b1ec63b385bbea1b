package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest          = errors.New("error parsing request")
	ErrNotifyUnauthorized  = errors.New("notification secret is invalid")
	ErrNotificationInvalid = errors.New("notification is missing required fields")

	// * Address resolution errors.
	ErrPayServerURLMissing = errors.New("pay server url is not configured")
	ErrAddressUnavailable  = errors.New("cannot obtain a receiving address")

	// * Business errors.
	ErrTradeNoEmpty     = errors.New("trade number is empty")
	ErrBasePriceInvalid = errors.New("base price must be positive")
	ErrPaymentDisabled  = errors.New("payment method is disabled")
)
