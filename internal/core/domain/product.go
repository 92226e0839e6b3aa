package domain

import "github.com/shopspring/decimal"

type (
	// Product is the normalized catalog entity. All defaults are applied
	// once, at normalization; downstream components never re-derive them.
	Product struct {
		ID          int64
		Title       string
		Price       decimal.Decimal
		Image       string
		Category    string
		Description string
		Rating      Rating
		Stock       int
		Brand       string
		Discount    decimal.Decimal
	}

	Rating struct {
		Rate  float64
		Count int
	}
)

// CatalogRecord is the raw catalog wire shape. Pointer fields distinguish
// absent values from zero values; only the catalog adapter and the
// normalizer look at this type.
type CatalogRecord struct {
	ID                 *int64
	Title              *string
	Price              *float64
	Thumbnail          string
	Images             []string
	Category           string
	Description        string
	Rating             *float64
	Reviews            int
	Stock              *int
	Brand              string
	DiscountPercentage *float64
}

// FilterCriteria selects a view of the catalog. An empty or
// all-whitespace SearchTerm disables the text filter; an empty Category
// or "all" disables the category filter.
type FilterCriteria struct {
	SearchTerm string
	Category   string
}

type Category struct {
	Slug  string
	Label string
}
