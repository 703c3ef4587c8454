package utils

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// ToCents converts a decimal amount (like 12.34) to cents as int64,
// preserving the sign. Sub-cent precision rounds half away from zero.
func ToCents(decimal float64) (int64, error) {
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) {
		return 0, ErrInvalidAmount
	}
	// int64 max ~9e18, so ~9e16 whole units is the safe ceiling
	if math.Abs(decimal) > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return int64(math.Round(decimal * 100.0)), nil
}

// FormatCents renders cents as a plain decimal string without going through
// floating point.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
