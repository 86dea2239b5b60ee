package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount  = errors.New("invalid monetary amount")
	ErrOverflow       = errors.New("amount exceeds supported range")
	ErrNegativeResult = errors.New("subtraction would produce a negative amount")
)

// maxAmount mirrors a decimal(15,2) column: thirteen integer digits, two
// fractional digits.
var maxAmount = decimal.RequireFromString("9999999999999.99")

// Money is an exact, non-negative monetary amount with two fractional digits.
// The zero value is zero money and ready to use.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// Parse constructs a Money from a decimal string such as "100" or "42.50".
// Negative values, more than two fractional digits, and anything
// decimal.NewFromString cannot parse exactly are rejected.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	if d.Exponent() < -2 {
		return Money{}, ErrInvalidAmount
	}
	if d.GreaterThan(maxAmount) {
		return Money{}, ErrOverflow
	}
	return Money{d: d}, nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic("money: " + s + ": " + err.Error())
	}
	return m
}

// FromMinorUnits constructs a Money from an integer count of minor units
// (cents). Negative counts are rejected.
func FromMinorUnits(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrInvalidAmount
	}
	d := decimal.New(cents, -2)
	if d.GreaterThan(maxAmount) {
		return Money{}, ErrOverflow
	}
	return Money{d: d}, nil
}

// Add returns m + other, failing with ErrOverflow past the supported range.
func (m Money) Add(other Money) (Money, error) {
	sum := m.d.Add(other.d)
	if sum.GreaterThan(maxAmount) {
		return Money{}, ErrOverflow
	}
	return Money{d: sum}, nil
}

// Sub returns m - other, failing with ErrNegativeResult when other exceeds m.
func (m Money) Sub(other Money) (Money, error) {
	diff := m.d.Sub(other.d)
	if diff.IsNegative() {
		return Money{}, ErrNegativeResult
	}
	return Money{d: diff}, nil
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

// Equal reports whether the two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.d.LessThan(other.d)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// MinorUnits returns the amount as an integer count of cents.
func (m Money) MinorUnits() int64 {
	return m.d.Shift(2).IntPart()
}

// String renders the canonical form: two fractional digits, no grouping
// separators, e.g. "100.00".
func (m Money) String() string {
	return m.d.StringFixed(2)
}
