// Package money provides the integer-minor-unit monetary value type shared
// by every pricing computation in this module. All arithmetic is
// currency-checked: combining two values with different currency codes is
// an error, never a silent coercion.
package money

import (
	"fmt"
	"math"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyMismatch is returned when two Money values with different
	// currencies are combined.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInvalidOperation is returned when an arithmetic invariant is
	// violated, such as int64 overflow.
	ErrInvalidOperation = errors.New("invalid money operation")
	// ErrInvalidCurrency is returned when a currency code is not a
	// 3-letter ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// Money is an immutable amount of a single currency, stored in minor units
// (e.g. pence for GBP: 10.50 GBP is Money{1050, "GBP"}).
type Money struct {
	amount   int64
	currency string
}

// New creates a Money value. The currency must be a 3-letter code.
func New(amount int64, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, errors.Wrapf(ErrInvalidCurrency, "%q", currency)
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustNew is like New but panics on an invalid currency. Intended for
// literals in tests and examples.
func MustNew(amount int64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns the zero amount of the given currency.
func Zero(currency string) Money {
	return Money{amount: 0, currency: currency}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 { return m.amount }

// Currency returns the 3-letter currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.amount < 0 }

// SameCurrency reports whether both values share one currency.
func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

// Add returns m + other. Fails when currencies differ or the sum
// overflows int64.
func (m Money) Add(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "add %s to %s", other.currency, m.currency)
	}
	sum := m.amount + other.amount
	if (other.amount > 0 && sum < m.amount) || (other.amount < 0 && sum > m.amount) {
		return Money{}, errors.Wrap(ErrInvalidOperation, "addition overflow")
	}
	return Money{amount: sum, currency: m.currency}, nil
}

// Sub returns m - other. Fails when currencies differ or the difference
// overflows int64. The result may be negative.
func (m Money) Sub(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, errors.Wrapf(ErrCurrencyMismatch, "subtract %s from %s", other.currency, m.currency)
	}
	diff := m.amount - other.amount
	if (other.amount < 0 && diff < m.amount) || (other.amount > 0 && diff > m.amount) {
		return Money{}, errors.Wrap(ErrInvalidOperation, "subtraction overflow")
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// Mul returns m scaled by an integer factor. Fails on int64 overflow.
func (m Money) Mul(n int64) (Money, error) {
	if m.amount == 0 || n == 0 {
		return Money{amount: 0, currency: m.currency}, nil
	}
	if m.amount == math.MinInt64 && n == -1 {
		return Money{}, errors.Wrapf(ErrInvalidOperation, "multiplication overflow: %s * %d", m, n)
	}
	product := m.amount * n
	if product/n != m.amount {
		return Money{}, errors.Wrapf(ErrInvalidOperation, "multiplication overflow: %s * %d", m, n)
	}
	return Money{amount: product, currency: m.currency}, nil
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// Compare returns -1, 0 or 1 ordering m against other.
// Fails when currencies differ.
func (m Money) Compare(other Money) (int, error) {
	if !m.SameCurrency(other) {
		return 0, errors.Wrapf(ErrCurrencyMismatch, "compare %s with %s", m.currency, other.currency)
	}
	switch {
	case m.amount < other.amount:
		return -1, nil
	case m.amount > other.amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// Min returns the smaller of two same-currency values.
func Min(a, b Money) (Money, error) {
	cmp, err := a.Compare(b)
	if err != nil {
		return Money{}, err
	}
	if cmp <= 0 {
		return a, nil
	}
	return b, nil
}

// Max returns the larger of two same-currency values.
func Max(a, b Money) (Money, error) {
	cmp, err := a.Compare(b)
	if err != nil {
		return Money{}, err
	}
	if cmp >= 0 {
		return a, nil
	}
	return b, nil
}

// Decimal returns the amount in minor units as a decimal, the bridge into
// rate and percentage math.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.amount)
}

// FromDecimal rounds a decimal number of minor units half-up into a Money
// value. Fails when the rounded amount does not fit in int64.
func FromDecimal(d decimal.Decimal, currency string) (Money, error) {
	rounded := d.Round(0)
	if !rounded.IsInteger() || !rounded.BigInt().IsInt64() {
		return Money{}, errors.Wrapf(ErrInvalidOperation, "amount %s out of range", rounded)
	}
	return New(rounded.IntPart(), currency)
}

// String renders the value as "<minor units> <CUR>" for error messages
// and test output.
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
