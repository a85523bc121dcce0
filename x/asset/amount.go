package asset

import (
	"math/big"

	"github.com/iov-one/quorum/errors"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount of the smallest units as a decimal number
// with the given number of decimal places, for example 1500 with 3 decimals
// is "1.500".
func FormatAmount(amount uint64, decimals uint32) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals))
	return d.StringFixed(int32(decimals))
}

// ParseAmount is the inverse of FormatAmount. The value must not be more
// precise than the decimal places allow.
func ParseAmount(value string, decimals uint32) (uint64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrInvalidAmount, "%q: %s", value, err)
	}
	if d.IsNegative() {
		return 0, errors.Wrapf(errors.ErrInvalidAmount, "%q is negative", value)
	}
	units := d.Shift(int32(decimals))
	if !units.IsInteger() {
		return 0, errors.Wrapf(errors.ErrInvalidAmount, "%q has more than %d decimal places", value, decimals)
	}
	n := units.BigInt()
	if !n.IsUint64() {
		return 0, errors.Wrapf(errors.ErrOverflow, "%q", value)
	}
	return n.Uint64(), nil
}
