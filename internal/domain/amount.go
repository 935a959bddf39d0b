package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a money value that encodes as a bare JSON number, which is what
// the dashboard reads. Decoding accepts both numbers and quoted numbers.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromInt returns a whole amount.
func AmountFromInt(v int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(v)}
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	if err := a.Decimal.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("Amount.UnmarshalJSON: %w", err)
	}
	return nil
}
