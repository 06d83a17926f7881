package basket

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/basket/money"
)

// Reconcile computes the line's monetary breakdown. It is pure and
// repeatable: no state is mutated and repeated calls with no intervening
// mutation return equal breakdowns.
//
// Pipeline: a freebie zeroes the gross; the discount amount is clamped to
// [0, gross]; net = gross - discount; tax applies to net only when the
// line is taxable, rounded half-up to minor units; the flat delivery
// charge is added last and never scales with quantity.
func (p *Product) Reconcile() (LineBreakdown, error) {
	cur := p.price.Currency()

	gross := money.Zero(cur)
	if !p.freebie {
		g, err := p.price.Mul(int64(p.quantity))
		if err != nil {
			return LineBreakdown{}, errors.Wrapf(err, "line %s: gross", p.sku)
		}
		gross = g
	}

	discountAmt := money.Zero(cur)
	if p.discount != nil {
		applied, err := p.discount.Apply(gross)
		if err != nil {
			return LineBreakdown{}, errors.Wrapf(err, "line %s: discount", p.sku)
		}
		if !applied.SameCurrency(gross) {
			return LineBreakdown{}, errors.Wrapf(money.ErrCurrencyMismatch,
				"line %s: discount in %s, price in %s", p.sku, applied.Currency(), cur)
		}
		discountAmt, err = clampDiscount(applied, gross)
		if err != nil {
			return LineBreakdown{}, errors.Wrapf(err, "line %s: discount", p.sku)
		}
	}

	net, err := gross.Sub(discountAmt)
	if err != nil {
		return LineBreakdown{}, errors.Wrapf(err, "line %s: net", p.sku)
	}
	if net.IsNegative() {
		net = money.Zero(cur)
	}

	taxableBase := money.Zero(cur)
	if p.taxable {
		taxableBase = net
	}
	taxAmt, err := money.FromDecimal(
		taxableBase.Decimal().Mul(decimal.NewFromFloat(p.rate.Float())), cur)
	if err != nil {
		return LineBreakdown{}, errors.Wrapf(err, "line %s: tax", p.sku)
	}

	total, err := net.Add(taxAmt)
	if err != nil {
		return LineBreakdown{}, errors.Wrapf(err, "line %s: total", p.sku)
	}
	total, err = total.Add(p.delivery)
	if err != nil {
		return LineBreakdown{}, errors.Wrapf(err, "line %s: total", p.sku)
	}

	return LineBreakdown{
		SKU:       p.sku,
		Quantity:  p.quantity,
		Gross:     gross,
		Discount:  discountAmt,
		Net:       net,
		Tax:       taxAmt,
		Delivery:  p.delivery,
		LineTotal: total,
	}, nil
}

// clampDiscount bounds a discount amount to [0, gross] so a misconfigured
// strategy can never drive a line negative.
func clampDiscount(amount, gross money.Money) (money.Money, error) {
	if amount.IsNegative() {
		return money.Zero(gross.Currency()), nil
	}
	return money.Min(amount, gross)
}
