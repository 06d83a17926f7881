// Package tax defines the tax-rate capability consumed by basket
// reconciliation. Concrete country or region rate tables are supplied by
// the embedding application; Percent covers the common flat-percentage
// case.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/basket/money"
)

// Rate is a stateless, pure tax-rate strategy.
type Rate interface {
	// Float returns the rate as a multiplier, e.g. 0.20 for 20%.
	Float() float64
	// Percentage returns the rate as an integer percent, e.g. 20.
	Percentage() int64
}

// Percent is a flat integer-percentage Rate.
type Percent int64

// Float implements Rate.
func (p Percent) Float() float64 {
	return decimal.NewFromInt(int64(p)).Div(decimal.NewFromInt(100)).InexactFloat64()
}

// Percentage implements Rate.
func (p Percent) Percentage() int64 { return int64(p) }

// Jurisdiction pairs a tax rate with a default currency for a region.
// It is a construction-time convenience only: reconciliation never
// consults it.
type Jurisdiction struct {
	Rate     Rate
	Currency string
}

// Amount builds a Money value of the given minor units in the
// jurisdiction's currency.
func (j Jurisdiction) Amount(minor int64) (money.Money, error) {
	return money.New(minor, j.Currency)
}
