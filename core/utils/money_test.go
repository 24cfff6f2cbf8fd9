package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, "2.12", CurrencyRound(decimal.RequireFromString("2.125")).String())
	assert.Equal(t, "2.14", CurrencyRound(decimal.RequireFromString("2.135")).String())
	assert.Equal(t, "0.33", QuantityRound(decimal.RequireFromString("0.3333")).String())
}

func TestAccountingFormat(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1234.5", "ZAR", "ZAR 1 234.50"},
		{"-1234.5", "ZAR", "ZAR (1 234.50)"},
		{"1234567.891", "", "1 234 567.89"},
		{"0", "USD", "USD 0.00"},
		{"-0.5", "", "(0.50)"},
		{"999.999", "", "1 000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountingFormat(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestNonZero(t *testing.T) {
	d := func(s string) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.RequireFromString(s)) }

	assert.False(t, NonZero(decimal.NullDecimal{}, decimal.Zero))
	assert.False(t, NonZero(d("0.004"), decimal.Zero))
	assert.True(t, NonZero(d("-0.01"), decimal.Zero))
	assert.False(t, NonZero(d("5"), decimal.NewFromInt(5)))
	assert.True(t, NonZero(d("5.01"), decimal.NewFromInt(5)))
}
