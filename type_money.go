package recipes

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns an amount of money in the given currency.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// String returns the money value formatted for its currency ("$5.00").
// Halves are rounded to even, like Round.
func (m Money) String() string {
	cur := m.currency()
	fraction := int32(cur.Fraction)
	minor := m.value.RoundBank(fraction).Shift(fraction)
	if minor.LessThan(minMinorUnits) || minor.GreaterThan(maxMinorUnits) {
		// too large for go-money minor units.
		return m.value.StringFixedBank(fraction) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }

// Div divides by a number of portions. n must not be zero.
func (m Money) Div(n Quantity) Money { return Money{value: m.value.Div(n.value), cur: m.cur} }

// Round returns the money rounded to 'places' decimals, halves go to even.
func (m Money) Round(places int32) Money {
	return Money{value: m.value.RoundBank(places), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
