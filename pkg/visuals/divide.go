package visuals

import (
	"errors"
	"fmt"
)

// NaN is returned by Divide in place of a quotient when the denominator is zero.
const NaN = "NaN"

// ErrNotNumeric is returned when an operand cannot be read as a number.
var ErrNotNumeric = errors.New("value is not numeric")

// Divide returns num/den as a float64, or the string NaN when den is zero.
// Unlike the display helpers, operands that are not numbers are an error.
func Divide(num, den any) (any, error) {
	n, ok := ParseFloat(num)
	if !ok {
		return nil, fmt.Errorf("numerator %v: %w", num, ErrNotNumeric)
	}
	d, ok := ParseFloat(den)
	if !ok {
		return nil, fmt.Errorf("denominator %v: %w", den, ErrNotNumeric)
	}
	if d == 0 {
		return NaN, nil
	}
	return n / d, nil
}
