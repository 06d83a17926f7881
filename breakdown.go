package basket

import "github.com/xenking/basket/money"

// LineBreakdown is the monetary breakdown of a single reconciled line.
// All amounts share the line's price currency.
type LineBreakdown struct {
	SKU       string
	Quantity  int
	Gross     money.Money
	Discount  money.Money
	Net       money.Money
	Tax       money.Money
	Delivery  money.Money
	LineTotal money.Money
}

// Totals aggregates the line breakdowns of a basket.
type Totals struct {
	Gross      money.Money
	Discount   money.Money
	Net        money.Money
	Tax        money.Money
	Delivery   money.Money
	GrandTotal money.Money
}

// BasketBreakdown is the full reconciliation result for a basket: the
// per-line breakdowns in insertion order plus their totals.
type BasketBreakdown struct {
	ID       string
	Currency string
	Lines    []LineBreakdown
	Totals   Totals
}
