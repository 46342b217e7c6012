package postgres

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// The amount and ratio columns are double precision for compatibility with the
// data already in place, even though the rest of the system works in exact
// decimals. Every conversion between the two representations goes through the
// two functions below; a future move to a numeric column type only touches
// this file and the migrations.

// ErrUnrepresentable is returned when a stored number cannot be interpreted as
// a decimal (NaN or infinity). Well-formed rows never contain such values.
var ErrUnrepresentable = errors.New("stored value is not representable as a decimal")

// storageExponent bounds the decimal expansion of a stored double. Values with
// no exact binary representation (0.1 and friends) therefore do NOT round-trip
// exactly; binary fractions (0.5, 0.25, integers) do.
const storageExponent = -28

// toStorage converts an exact decimal to the nearest representable double.
func toStorage(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// fromStorage converts a stored double back into a decimal, expanding the
// binary value down to storageExponent.
func fromStorage(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrUnrepresentable
	}
	return decimal.NewFromFloatWithExponent(f, storageExponent), nil
}
