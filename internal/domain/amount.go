package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places money is recorded with.
const AmountPlaces = 2

// MaxAmount is the largest amount accepted for an entry or a budget.
var MaxAmount = decimal.New(1, 15)

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrAmountTooLarge  = errors.New("amount must not exceed 1000000000000000")
	ErrAmountPrecision = errors.New("amount must have at most 2 decimal places")
)

// ValidateAmount checks a user supplied amount. The exponent is checked before any
// comparison: comparing decimals rescales them to a common exponent, which is
// unbounded work for values like 1e400000000.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.Exponent() > 15 {
		return ErrAmountTooLarge
	}
	if amount.Exponent() < -18 {
		return ErrAmountPrecision
	}
	if amount.GreaterThan(MaxAmount) {
		return ErrAmountTooLarge
	}
	if !amount.Equal(amount.Truncate(AmountPlaces)) {
		return ErrAmountPrecision
	}
	return nil
}
