// Package coupon provides an in-memory book of coupon codes and the rules
// they carry. Lookups against large code books are front-ended by a bloom
// filter, so codes that were never registered are rejected without
// touching the rule map.
package coupon

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"

	"github.com/xenking/basket"
	"github.com/xenking/basket/discount"
	"github.com/xenking/basket/money"
)

// Coupon codes are 8 to 10 characters.
const (
	minCodeLen = 8
	maxCodeLen = 10
)

// Kind enumerates the supported coupon discount strategies.
type Kind string

const (
	// KindPercentage discounts a line by a percent of its gross.
	KindPercentage Kind = "percentage"
	// KindFixed discounts a line by a fixed amount capped at its gross.
	KindFixed Kind = "fixed"
)

var (
	// ErrInvalidCoupon is returned when a coupon code is malformed or not
	// present in the book.
	ErrInvalidCoupon = errors.New("invalid coupon code")
	// ErrIneligible is returned when a product does not satisfy the
	// rule's minimum quantity requirement.
	ErrIneligible = errors.New("product not eligible for coupon")
)

// Rule defines a coupon's discount behaviour and eligibility constraints.
type Rule struct {
	Code        string
	Kind        Kind
	Percent     int64
	Amount      money.Money
	MinQuantity int
	Description string
}

// Discount materializes the rule as a discount strategy.
func (r Rule) Discount() discount.Discount {
	if r.Kind == KindFixed {
		return discount.NewValue(r.Amount)
	}
	return discount.NewPercentage(r.Percent)
}

// Book is an in-memory coupon code registry.
type Book struct {
	filter *bloom.BloomFilter
	rules  map[string]Rule
}

// NewBook creates a book sized for the expected number of codes at the
// given false-positive rate.
func NewBook(expectedCodes uint, falsePositiveRate float64) *Book {
	return &Book{
		filter: bloom.NewWithEstimates(expectedCodes, falsePositiveRate),
		rules:  make(map[string]Rule),
	}
}

// Add registers a rule. The code must be 8 to 10 characters and the rule
// well-formed for its kind: fixed rules need a priced amount, percentage
// rules a percent in [0, 100].
func (b *Book) Add(rule Rule) error {
	if len(rule.Code) < minCodeLen || len(rule.Code) > maxCodeLen {
		return errors.Wrapf(ErrInvalidCoupon, "code %q: length must be %d to %d", rule.Code, minCodeLen, maxCodeLen)
	}
	switch rule.Kind {
	case KindFixed:
		if rule.Amount.Currency() == "" {
			return errors.Wrapf(ErrInvalidCoupon, "code %q: fixed rule has no amount", rule.Code)
		}
	case KindPercentage:
		if rule.Percent < 0 || rule.Percent > 100 {
			return errors.Wrapf(ErrInvalidCoupon, "code %q: percent %d out of range", rule.Code, rule.Percent)
		}
	default:
		return errors.Wrapf(ErrInvalidCoupon, "code %q: unsupported kind %q", rule.Code, rule.Kind)
	}

	b.filter.AddString(rule.Code)
	b.rules[rule.Code] = rule
	return nil
}

// Lookup returns the rule for a code. Fails with ErrInvalidCoupon when
// the code was never registered.
func (b *Book) Lookup(code string) (Rule, error) {
	if len(code) < minCodeLen || len(code) > maxCodeLen {
		return Rule{}, errors.Wrapf(ErrInvalidCoupon, "code %q", code)
	}
	// The filter rejects most unknown codes cheaply; the map settles the
	// false positives.
	if !b.filter.TestString(code) {
		return Rule{}, errors.Wrapf(ErrInvalidCoupon, "code %q", code)
	}
	rule, ok := b.rules[code]
	if !ok {
		return Rule{}, errors.Wrapf(ErrInvalidCoupon, "code %q", code)
	}
	return rule, nil
}

// Redeem looks up the code, checks the product satisfies the rule's
// minimum quantity, attaches the rule's discount, and records the code on
// the product's coupon list. On failure the product is left unchanged.
func (b *Book) Redeem(code string, p *basket.Product) error {
	rule, err := b.Lookup(code)
	if err != nil {
		return err
	}
	if rule.MinQuantity > 0 && p.Quantity() < rule.MinQuantity {
		return errors.Wrapf(ErrIneligible, "code %q requires quantity %d, product %s has %d",
			code, rule.MinQuantity, p.SKU(), p.Quantity())
	}
	p.SetDiscount(rule.Discount()).Coupon(code)
	return nil
}
