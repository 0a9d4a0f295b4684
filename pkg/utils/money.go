package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxMoney is the first amount numeric(12,2) cannot hold.
var maxMoney = decimal.New(1, 10)

// ParseMoney reads an optional amount and rounds it to cents. Amounts need
// to fit numeric(12,2), ten integer digits.
func ParseMoney(field string, s *string) (decimal.NullDecimal, error) {
	if s == nil || *s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s must be a decimal amount", ErrInvalidInput, field)
	}
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(maxMoney) {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %s must be less than 10000000000", ErrInvalidInput, field)
	}
	return decimal.NewNullDecimal(d), nil
}
