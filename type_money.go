package finance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with fixed-point semantics: amounts are
// handled as exact decimals and rendered with 2 fractional digits. The
// currency is a display concern and lives outside this type; the persisted
// format carries bare amounts.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric constant. Mostly useful in tests.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		panic("unreachable")
	}
}

// ParseAmount parses a strictly positive decimal amount, rounded half-up to
// 2 fractional digits. This is the only way amounts enter the system, both
// from the persisted file and from user input.
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("amount %q is not positive", s)
	}
	return Money{value: d.Round(2)}, nil
}

// String renders the amount with exactly 2 fractional digits, no currency
// symbol, no thousands separator. This is also the persisted form.
func (m Money) String() string { return m.value.StringFixed(2) }

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Round2 returns the value rounded half-up to 2 fractional digits.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }

func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money        { return Money{value: m.value.Neg()} }
