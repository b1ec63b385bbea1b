package domain_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/usdtgate/usdtgate/internal/core/domain"
)

func TestDecimalMark(t *testing.T) {
	tests := []struct {
		name    string
		tradeNo string
		expMark string
	}{
		{name: "Last five digits", tradeNo: "ORDER123", expMark: "0.00123"},
		{name: "Longer digit tail truncated", tradeNo: "2024010112345678", expMark: "0.45678"},
		{name: "Digits interleaved with letters", tradeNo: "A1B2C3D4E5F6", expMark: "0.23456"},
		{name: "Exactly five digits", tradeNo: "T-99999", expMark: "0.99999"},
		{name: "Single digit padded", tradeNo: "X7", expMark: "0.00007"},
		{name: "No digits fallback", tradeNo: "NODIGITSHERE", expMark: "0.00001"},
		{name: "All zero digits fallback", tradeNo: "A00000", expMark: "0.00001"},
		{name: "Empty trade number fallback", tradeNo: "", expMark: "0.00001"},
	}

	lower := decimal.MustParse("0.00001")
	upper := decimal.MustParse("0.99999")

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mark := domain.DecimalMark(test.tradeNo)

			assert.Equal(t, 0, mark.Cmp(decimal.MustParse(test.expMark)),
				"mark %s, want %s", mark, test.expMark)

			// the mark always stays inside [0.00001, 0.99999]
			assert.True(t, mark.Cmp(lower) >= 0)
			assert.True(t, mark.Cmp(upper) <= 0)

			// deterministic
			assert.Equal(t, 0, mark.Cmp(domain.DecimalMark(test.tradeNo)))
		})
	}
}

func TestPayableAmount(t *testing.T) {
	tests := []struct {
		name      string
		tradeNo   string
		basePrice string
		expAmount string
	}{
		{name: "Base with five digit mark", tradeNo: "ORDER123", basePrice: "10.00", expAmount: "10.001230"},
		{name: "No digits fallback", tradeNo: "NODIGITSHERE", basePrice: "5.00", expAmount: "5.000010"},
		{name: "Zero-padded digit tail", tradeNo: "T-000042", basePrice: "19.99", expAmount: "19.990420"},
		{name: "Fractional base price", tradeNo: "ORDER123", basePrice: "0.50", expAmount: "0.501230"},
		{name: "Mark carries over to six digits", tradeNo: "T-99999", basePrice: "100.00", expAmount: "100.999990"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			amount, err := domain.PayableAmount(test.tradeNo, decimal.MustParse(test.basePrice))
			assert.NoError(t, err)
			assert.Equal(t, test.expAmount, domain.FormatAmount(amount))

			again, err := domain.PayableAmount(test.tradeNo, decimal.MustParse(test.basePrice))
			assert.NoError(t, err)
			assert.Equal(t, 0, amount.Cmp(again))
		})
	}
}

func TestTransferNotificationValidate(t *testing.T) {
	good := domain.TransferNotification{
		FromAddress: "TSenderAddress111111111111111111111",
		Amount:      decimal.MustParse("10.00123"),
		TxHash:      "a1b2c3",
	}
	assert.NoError(t, good.Validate())

	bad := []domain.TransferNotification{
		{Amount: good.Amount, TxHash: good.TxHash},
		{FromAddress: good.FromAddress, Amount: good.Amount},
		{FromAddress: good.FromAddress, TxHash: good.TxHash},
		{FromAddress: good.FromAddress, Amount: decimal.MustParse("-1"), TxHash: good.TxHash},
	}
	for _, n := range bad {
		assert.ErrorIs(t, n.Validate(), domain.ErrNotificationInvalid)
	}
}
