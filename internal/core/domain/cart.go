package domain

import "github.com/shopspring/decimal"

// CartItem is a denormalized snapshot of a product's display fields plus
// the line quantity. Quantity is always at least 1.
type CartItem struct {
	ID       int64
	Title    string
	Price    decimal.Decimal
	Image    string
	Category string
	Quantity int
}

// CartSummary carries the derived cart aggregates. It is computed on
// demand and never stored.
type CartSummary struct {
	TotalItems int
	TotalPrice decimal.Decimal
}
