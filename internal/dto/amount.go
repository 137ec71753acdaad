package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/dealership_commission_app/internal/core/commission"
	"github.com/shopspring/decimal"
)

// Amount is a monetary form value. It accepts a JSON number, a numeric string
// such as "$25,000.50", or null, and is rounded to cents. Values that cannot be parsed, and negative
// values, decode to zero instead of failing the request.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d rounded to cents, clamping negatives to zero.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: commission.NormalizeAmount(d)}
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		a.Decimal = commission.AmountFromString(s)
		return nil
	}

	a.Decimal = commission.AmountFromString(string(data))
	return nil
}
