// Package basket holds the core of the pricing library: the Product line
// item, the Basket that aggregates lines, and the reconciliation that
// turns both into an auditable monetary breakdown. Tax rates, discounts
// and categories are supplied as capability interfaces and dispatched
// polymorphically; no registry is required.
package basket

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/xenking/basket/money"
)

// ErrEmptyBasket is returned when an empty basket is reconciled.
var ErrEmptyBasket = errors.New("basket is empty")

// NotFoundError indicates no line in the basket carries the given sku.
type NotFoundError struct {
	SKU string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found in basket", e.SKU)
}

// Basket is an ordered collection of product lines. Insertion order is
// preserved and reflected in reconciliation output. A basket is owned by
// one logical caller at a time; it performs no internal locking.
type Basket struct {
	id    string
	lines []*Product
}

// New creates an empty basket with a fresh ID.
func New() *Basket {
	return &Basket{id: uuid.New().String()}
}

// ID returns the basket's identifier.
func (b *Basket) ID() string { return b.id }

// Len returns the number of lines.
func (b *Basket) Len() int { return len(b.lines) }

// Lines returns a copy of the line slice in insertion order. The products
// themselves are shared handles, not snapshots.
func (b *Basket) Lines() []*Product {
	out := make([]*Product, len(b.lines))
	copy(out, b.lines)
	return out
}

// Add appends a product line.
func (b *Basket) Add(p *Product) *Basket {
	b.lines = append(b.lines, p)
	return b
}

// Remove deletes the first line with the given sku. Fails with
// NotFoundError when no line matches.
func (b *Basket) Remove(sku string) error {
	for i, line := range b.lines {
		if line.sku == sku {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{SKU: sku}
}

// Reconcile computes the basket's monetary breakdown: each line's
// breakdown in insertion order plus currency-checked totals. It is pure
// and repeatable. All lines must share one currency; reordering lines
// changes only the output line order, never the totals.
func (b *Basket) Reconcile() (BasketBreakdown, error) {
	if len(b.lines) == 0 {
		return BasketBreakdown{}, ErrEmptyBasket
	}

	currency := b.lines[0].price.Currency()
	for _, line := range b.lines {
		if line.price.Currency() != currency {
			return BasketBreakdown{}, errors.Wrapf(money.ErrCurrencyMismatch,
				"line %s priced in %s, basket in %s", line.sku, line.price.Currency(), currency)
		}
	}

	totals := Totals{
		Gross:      money.Zero(currency),
		Discount:   money.Zero(currency),
		Net:        money.Zero(currency),
		Tax:        money.Zero(currency),
		Delivery:   money.Zero(currency),
		GrandTotal: money.Zero(currency),
	}
	breakdowns := make([]LineBreakdown, 0, len(b.lines))
	for _, line := range b.lines {
		lb, err := line.Reconcile()
		if err != nil {
			return BasketBreakdown{}, err
		}
		if err := accumulate(&totals, lb); err != nil {
			return BasketBreakdown{}, errors.Wrapf(err, "line %s: totals", lb.SKU)
		}
		breakdowns = append(breakdowns, lb)
	}

	return BasketBreakdown{
		ID:       b.id,
		Currency: currency,
		Lines:    breakdowns,
		Totals:   totals,
	}, nil
}

func accumulate(t *Totals, lb LineBreakdown) error {
	var err error
	if t.Gross, err = t.Gross.Add(lb.Gross); err != nil {
		return err
	}
	if t.Discount, err = t.Discount.Add(lb.Discount); err != nil {
		return err
	}
	if t.Net, err = t.Net.Add(lb.Net); err != nil {
		return err
	}
	if t.Tax, err = t.Tax.Add(lb.Tax); err != nil {
		return err
	}
	if t.Delivery, err = t.Delivery.Add(lb.Delivery); err != nil {
		return err
	}
	if t.GrandTotal, err = t.GrandTotal.Add(lb.LineTotal); err != nil {
		return err
	}
	return nil
}
