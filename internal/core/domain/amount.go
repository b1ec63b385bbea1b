package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/govalues/decimal"
)

// AmountScale is the fractional precision of every payable amount.
const AmountScale = 6

// markDigits is the number of trade-number digits folded into the decimal mark.
const markDigits = 5

// MatchTolerance is the maximum absolute difference allowed when comparing an
// observed transfer amount against a stored payable amount (exclusive bound).
var MatchTolerance = decimal.MustNew(1, AmountScale) // 0.000001

// MatchWindow is the maximum age of a pending order eligible for reconciliation.
const MatchWindow = 2 * time.Hour

// DecimalMark derives the 5-digit fractional disambiguator from a trade number.
// Non-digit characters are discarded, the last five digits are interpreted as
// the fractional part 0.ddddd. Trade numbers with no digits (or an all-zero
// suffix) fall back to 0.00001 so the mark stays non-zero.
func DecimalMark(tradeNo string) decimal.Decimal {
	digits := make([]byte, 0, markDigits)
	for i := 0; i < len(tradeNo); i++ {
		if c := tradeNo[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) > markDigits {
		digits = digits[len(digits)-markDigits:]
	}

	n := int64(1)
	if len(digits) > 0 {
		n, _ = strconv.ParseInt(string(digits), 10, 64)
		if n == 0 {
			n = 1
		}
	}

	return decimal.MustNew(n, markDigits)
}

// PayableAmount combines a base price with the trade number's decimal mark into
// the exact value the payer is instructed to send.
func PayableAmount(tradeNo string, basePrice decimal.Decimal) (decimal.Decimal, error) {
	amount, err := basePrice.Add(DecimalMark(tradeNo))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	return amount, nil
}

// FormatAmount renders an amount as a fixed-point string with exactly six
// fractional digits and no grouping separators.
func FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("%.6f", amount)
}
