package models

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount is a money value as returned by the remote service.
//
// The expenses table stores a numeric column, but rows observed in the wild
// carry plain numbers, quoted numeric strings, or null. Rendering a list must
// not fail on one bad row, so decoding coerces anything unparseable to zero.
type Amount struct {
	decimal.Decimal
}

// AmountFromFloat builds an Amount from a float, for tests and fixtures.
func AmountFromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// UnmarshalJSON decodes a number or a quoted numeric string. Null, empty, and
// non-numeric values all decode to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}

	a.Decimal = d
	return nil
}

// TotalAmount sums the amounts of the given expenses. Missing and malformed
// amounts already decoded to zero, so the sum never errors.
func TotalAmount(expenses []Expense) Amount {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount.Decimal)
	}
	return Amount{total}
}
