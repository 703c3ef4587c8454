package models

import (
	"fmt"
	"strconv"

	"dompet-api/utils"
)

// Money is an amount in minor units (cents). On the wire it is a plain
// decimal number: {"amount": 12.34} lands as 1234 and is rendered back
// the same way. The conversion happens exactly once, at the JSON
// boundary; everything behind it works in cents.
type Money int64

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(utils.FormatCents(int64(m))), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	decimal, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("%w: %s", utils.ErrInvalidAmount, data)
	}
	cents, err := utils.ToCents(decimal)
	if err != nil {
		return err
	}
	*m = Money(cents)
	return nil
}
