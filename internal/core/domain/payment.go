package domain

import "github.com/govalues/decimal"

// PaymentInstructions is the payer-facing result of payment creation.
type PaymentInstructions struct {
	TradeNo       string
	Address       string
	Amount        decimal.Decimal
	PaymentURI    string
	QRCode        string // PNG data URI, empty if rendering failed
	Instruction   string
	ConfirmBlocks int
}
