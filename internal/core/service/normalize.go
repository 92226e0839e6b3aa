package service

import (
	"fmt"

	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultRatingRate  = 4.0
	defaultRatingCount = 0
)

// normalizeRecord maps a raw catalog record onto the Product shape.
// Optional fields get their documented defaults here. A record missing
// any of id, title or price is malformed and reported as an error; the
// caller drops it from the batch.
func normalizeRecord(r domain.CatalogRecord, placeholderImage string) (domain.Product, error) {
	switch {
	case r.ID == nil:
		return domain.Product{}, fmt.Errorf("%w: missing id", domain.ErrMalformedRecord)
	case r.Title == nil || *r.Title == "":
		return domain.Product{}, fmt.Errorf("%w: missing title", domain.ErrMalformedRecord)
	case r.Price == nil:
		return domain.Product{}, fmt.Errorf("%w: missing price", domain.ErrMalformedRecord)
	case *r.Price < 0:
		return domain.Product{}, fmt.Errorf("%w: negative price", domain.ErrMalformedRecord)
	}

	p := domain.Product{
		ID:          *r.ID,
		Title:       *r.Title,
		Price:       decimal.NewFromFloat(*r.Price),
		Image:       selectImage(r, placeholderImage),
		Category:    r.Category,
		Description: r.Description,
		Rating:      domain.Rating{Rate: defaultRatingRate, Count: defaultRatingCount},
		Brand:       r.Brand,
	}

	if r.Rating != nil {
		p.Rating.Rate = *r.Rating
	}
	if r.Reviews > 0 {
		p.Rating.Count = r.Reviews
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.DiscountPercentage != nil {
		p.Discount = decimal.NewFromFloat(*r.DiscountPercentage)
	}
	return p, nil
}

// selectImage picks the thumbnail, else the first list entry, else the
// configured placeholder.
func selectImage(r domain.CatalogRecord, placeholder string) string {
	if r.Thumbnail != "" {
		return r.Thumbnail
	}
	if len(r.Images) > 0 && r.Images[0] != "" {
		return r.Images[0]
	}
	return placeholder
}
