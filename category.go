package basket

// Category is a one-shot product mutator, applied exactly once at the
// moment it is attached. It may change any of the product's mutable
// fields.
type Category interface {
	Apply(p *Product)
}

// TaxExempt is the reference category: it switches tax off for the
// product it is attached to (zero-rated goods such as books or
// children's clothing in some jurisdictions).
type TaxExempt struct {
	Reason string
}

// Apply implements Category.
func (c TaxExempt) Apply(p *Product) {
	p.SetTaxable(false)
}

// CategoryFunc adapts a plain function into a Category.
type CategoryFunc func(p *Product)

// Apply implements Category.
func (f CategoryFunc) Apply(p *Product) { f(p) }
