package domain

import "errors"

var (
	ErrCatalogFetch    = errors.New("catalog fetch failed")
	ErrCategoryFetch   = errors.New("category fetch failed")
	ErrMalformedRecord = errors.New("malformed catalog record")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = errors.New("cart is empty")
)
