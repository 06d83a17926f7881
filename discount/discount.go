// Package discount defines the discount capability applied to a basket
// line's gross amount, plus the two built-in strategies: a fixed monetary
// discount and a percentage discount.
package discount

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/basket/money"
)

var hundred = decimal.NewFromInt(100)

// Discount computes the discount amount for a line's gross value.
// Implementations must be pure; the line reconciliation clamps whatever
// they return to [0, gross], so a misconfigured discount can never drive
// a line negative.
type Discount interface {
	// Apply returns the discount amount for the given line gross.
	Apply(gross money.Money) (money.Money, error)
	// Rate returns the configured rate in an implementation-defined shape.
	Rate() any
}

// Value is a fixed monetary discount, capped at the gross it is applied
// to.
type Value struct {
	amount money.Money
}

// NewValue creates a fixed-amount discount.
func NewValue(amount money.Money) Value {
	return Value{amount: amount}
}

// Apply returns min(fixed amount, gross), floored at zero. Fails with
// money.ErrCurrencyMismatch when the fixed amount and the gross disagree
// on currency.
func (v Value) Apply(gross money.Money) (money.Money, error) {
	amount, err := money.Min(v.amount, gross)
	if err != nil {
		return money.Money{}, errors.Wrap(err, "apply value discount")
	}
	if amount.IsNegative() {
		return money.Zero(gross.Currency()), nil
	}
	return amount, nil
}

// Rate returns the configured fixed amount.
func (v Value) Rate() any { return v.amount }

// Percentage discounts a line by a percent of its gross. Percents outside
// [0, 100] are accepted; the caller's clamp keeps the result safe.
type Percentage struct {
	percent int64
}

// NewPercentage creates a percentage discount.
func NewPercentage(percent int64) Percentage {
	return Percentage{percent: percent}
}

// Apply returns gross * percent / 100 rounded half-up to minor units.
// The result is deliberately uncapped here; reconciliation clamps it.
func (p Percentage) Apply(gross money.Money) (money.Money, error) {
	amount := gross.Decimal().Mul(decimal.NewFromInt(p.percent)).Div(hundred)
	return money.FromDecimal(amount, gross.Currency())
}

// Rate returns the configured percent.
func (p Percentage) Rate() any { return p.percent }
