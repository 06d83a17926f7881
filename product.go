package basket

import (
	"github.com/go-faster/errors"

	"github.com/xenking/basket/discount"
	"github.com/xenking/basket/money"
	"github.com/xenking/basket/tax"
)

// Sentinel errors for product mutation.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Product is a single basket line: immutable identity (sku, name, price,
// tax rate) plus mutable pricing state. Setters either fully apply or
// leave the product unchanged. A Product is owned by one logical caller
// at a time; it performs no internal locking.
type Product struct {
	sku   string
	name  string
	price money.Money
	rate  tax.Rate

	quantity int
	freebie  bool
	taxable  bool
	delivery money.Money
	discount discount.Discount
	coupons  []string
	tags     []string
	category Category
}

// NewProduct creates a product with default state: quantity 1, taxable,
// not a freebie, zero delivery in the price currency.
func NewProduct(sku, name string, price money.Money, rate tax.Rate) (*Product, error) {
	switch {
	case sku == "":
		return nil, errors.Wrap(ErrInvalidProduct, "empty sku")
	case name == "":
		return nil, errors.Wrapf(ErrInvalidProduct, "product %s: empty name", sku)
	case price.Currency() == "":
		return nil, errors.Wrapf(ErrInvalidProduct, "product %s: price has no currency", sku)
	case rate == nil:
		return nil, errors.Wrapf(ErrInvalidProduct, "product %s: nil tax rate", sku)
	}
	return &Product{
		sku:      sku,
		name:     name,
		price:    price,
		rate:     rate,
		quantity: 1,
		taxable:  true,
		delivery: money.Zero(price.Currency()),
	}, nil
}

// NewProductIn creates a product priced in a jurisdiction's currency and
// taxed at its rate.
func NewProductIn(j tax.Jurisdiction, sku, name string, priceMinor int64) (*Product, error) {
	price, err := j.Amount(priceMinor)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s", sku)
	}
	return NewProduct(sku, name, price, j.Rate)
}

// SKU returns the product's stock-keeping unit.
func (p *Product) SKU() string { return p.sku }

// Name returns the product's display name.
func (p *Product) Name() string { return p.name }

// Price returns the unit price.
func (p *Product) Price() money.Money { return p.price }

// Rate returns the tax rate.
func (p *Product) Rate() tax.Rate { return p.rate }

// Quantity returns the current quantity, always >= 1.
func (p *Product) Quantity() int { return p.quantity }

// Freebie reports whether the line's monetary value is excluded from
// totals.
func (p *Product) Freebie() bool { return p.freebie }

// Taxable reports whether tax applies to the line.
func (p *Product) Taxable() bool { return p.taxable }

// Delivery returns the flat per-line delivery charge.
func (p *Product) Delivery() money.Money { return p.delivery }

// Discount returns the attached discount, or nil.
func (p *Product) Discount() discount.Discount { return p.discount }

// Category returns the attached category, or nil.
func (p *Product) Category() Category { return p.category }

// Coupons returns a copy of the coupon codes in attachment order.
func (p *Product) Coupons() []string {
	out := make([]string, len(p.coupons))
	copy(out, p.coupons)
	return out
}

// Tags returns a copy of the tags in attachment order.
func (p *Product) Tags() []string {
	out := make([]string, len(p.tags))
	copy(out, p.tags)
	return out
}

// SetQuantity replaces the quantity. Fails with ErrInvalidQuantity when
// n < 1.
func (p *Product) SetQuantity(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidQuantity, "product %s: %d", p.sku, n)
	}
	p.quantity = n
	return nil
}

// Increment raises the quantity by one.
func (p *Product) Increment() *Product {
	p.quantity++
	return p
}

// Decrement lowers the quantity by one, flooring at 1.
func (p *Product) Decrement() *Product {
	if p.quantity > 1 {
		p.quantity--
	}
	return p
}

// SetFreebie marks or unmarks the line as a freebie.
func (p *Product) SetFreebie(freebie bool) *Product {
	p.freebie = freebie
	return p
}

// SetTaxable marks or unmarks the line as taxable.
func (p *Product) SetTaxable(taxable bool) *Product {
	p.taxable = taxable
	return p
}

// SetDelivery replaces the flat per-line delivery charge. Fails with
// money.ErrCurrencyMismatch unless the charge shares the price currency.
func (p *Product) SetDelivery(charge money.Money) error {
	if !charge.SameCurrency(p.price) {
		return errors.Wrapf(money.ErrCurrencyMismatch,
			"product %s: delivery in %s, price in %s", p.sku, charge.Currency(), p.price.Currency())
	}
	p.delivery = charge
	return nil
}

// SetDiscount attaches a discount strategy. Currency compatibility is
// validated at reconciliation.
func (p *Product) SetDiscount(d discount.Discount) *Product {
	p.discount = d
	return p
}

// Coupon appends a coupon code. Codes are never deduplicated or
// reordered.
func (p *Product) Coupon(code string) *Product {
	p.coupons = append(p.coupons, code)
	return p
}

// Tag appends a tag. Tags are never deduplicated or reordered.
func (p *Product) Tag(tag string) *Product {
	p.tags = append(p.tags, tag)
	return p
}

// SetCategory applies the category to the product once, synchronously,
// then stores it. Categories are never re-applied when other fields
// change later.
func (p *Product) SetCategory(c Category) *Product {
	c.Apply(p)
	p.category = c
	return p
}

// Action invokes fn on the product immediately. It is a convenience for
// grouping several mutations into one call; there is no batching and no
// rollback beyond what the individual setters inside fn guarantee.
func (p *Product) Action(fn func(*Product) error) error {
	return fn(p)
}
