package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencyRound rounds a monetary amount to two places, half to even.
func CurrencyRound(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(2)
}

// QuantityRound rounds a quantity to two places, half to even.
func QuantityRound(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(2)
}

// AccountingFormat renders amount with two decimals and spaces between
// thousands, negatives in parentheses: "ZAR 1 234.50", "ZAR (1 234.50)".
// The currency code and its space are omitted when currency is empty.
func AccountingFormat(amount decimal.Decimal, currency string) string {
	prefix := ""
	if currency != "" {
		prefix = currency + " "
	}

	rounded := amount.Abs().RoundBank(2)
	fixed := rounded.StringFixed(2)
	whole := strings.ReplaceAll(humanize.Comma(rounded.IntPart()), ",", " ")
	body := whole + fixed[strings.IndexByte(fixed, '.'):]

	if amount.Sign() < 0 {
		return prefix + "(" + body + ")"
	}
	return prefix + body
}

// NonZero reports whether amount is present and, rounded to two places, its
// magnitude exceeds min.
func NonZero(amount decimal.NullDecimal, min decimal.Decimal) bool {
	if !amount.Valid {
		return false
	}
	return amount.Decimal.RoundBank(2).Abs().GreaterThan(min)
}
