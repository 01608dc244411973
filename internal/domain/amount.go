package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates amount text that is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a negative amount.
	ErrNegativeAmount = errors.New("negative amount")
)

// Bounds of a parsed amount: at most MaxScale fractional digits and a
// coefficient of at most maxCoefficientBits bits.
const (
	MaxScale           = 28
	maxCoefficientBits = 96
)

// Amount is a fixed-precision money value.
//
// Amount keeps the scale it was parsed with, so values print back exactly
// as they were written, trailing zeros included. The zero value is 0.
type Amount struct {
	value decimal.Decimal
}

// ZeroAmount is the zero amount with no fractional digits.
var ZeroAmount = Amount{}

// ParseAmount parses a non-negative decimal amount such as "100.1234".
// Exponent notation is not accepted.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "eE") {
		return Amount{}, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}

	if d.Exponent() < -MaxScale || d.Coefficient().BitLen() > maxCoefficientBits {
		return Amount{}, ErrInvalidAmount
	}

	if d.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}

	return Amount{value: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
// It is meant for tests and constants.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Add returns a + b.
//
// Adding zero returns the other operand unchanged, scale included.
func (a Amount) Add(b Amount) Amount {
	switch {
	case a.value.IsZero():
		return b
	case b.value.IsZero():
		return a
	}

	return Amount{value: a.value.Add(b.value)}
}

// Sub returns a - b.
//
// Subtracting zero returns a unchanged; subtracting from zero returns -b.
func (a Amount) Sub(b Amount) Amount {
	switch {
	case b.value.IsZero():
		return a
	case a.value.IsZero():
		return Amount{value: b.value.Neg()}
	}

	return Amount{value: a.value.Sub(b.value)}
}

// Cmp compares a and b numerically and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(b.value)
}

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.value.LessThan(b.value)
}

// Equal reports whether a and b are numerically equal, ignoring scale.
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// IsZero reports whether a == 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNegative reports whether a < 0.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String renders the amount with all of its fractional digits.
func (a Amount) String() string {
	if exp := a.value.Exponent(); exp < 0 {
		return a.value.StringFixed(-exp)
	}

	return a.value.String()
}

// MarshalJSON renders the amount as a quoted string to keep its precision.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal numbers.
func (a *Amount) UnmarshalJSON(b []byte) error {
	parsed, err := ParseAmount(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
