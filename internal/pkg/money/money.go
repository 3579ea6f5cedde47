package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Payment processor amounts are integers in the currency's minor unit (cents for usd).
const minorUnitExponent = 2

var ErrNegativeAmount = errors.New("amount must not be negative")

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a decimal currency amount into minor units, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}
	return amount.Mul(hundred).Round(0).IntPart(), nil
}

func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorUnitExponent)
}

// FromFloat parses a JSON or BSON number, keeping two decimal places.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(minorUnitExponent)
}

func ToFloat(d decimal.Decimal) float64 {
	return d.Round(minorUnitExponent).InexactFloat64()
}
