package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value held as an exact decimal in major units. The
// tool only deals in USD, so the currency is fixed.
type Money struct {
	value decimal.Decimal
}

// USD wraps a decimal amount of dollars.
func USD(value decimal.Decimal) Money { return Money{value: value} }

// currency returns the USD currency descriptor.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency
	return *money.New(0, money.USD).Currency()
}

// String formats the value with the currency's grapheme and fraction, e.g.
// "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	cents := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.IntPart())
}

// Add returns the sum of two amounts.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }

// MulShares returns the amount multiplied by a share count.
func (m Money) MulShares(n uint64) Money {
	return Money{value: m.value.Mul(decimal.NewFromUint64(n))}
}
