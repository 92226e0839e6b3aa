package port

import (
	"context"

	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogClient is the outbound port to the remote catalog source. Any
// failure means "unavailable"; the caller decides whether it surfaces.
type CatalogClient interface {
	FetchProducts(context.Context) ([]domain.CatalogRecord, error)
	FetchCategories(context.Context) ([]string, error)
}

// CatalogBrowser is the inbound port the presentation surface uses to
// read the catalog.
type CatalogBrowser interface {
	Refresh(context.Context) error
	Search(domain.FilterCriteria) []domain.Product
	Categories() []domain.Category
	Product(id int64) (domain.Product, bool)
}

// CartKeeper is the inbound port over the session cart. Its operations
// never fail: invalid requests are absorbed as no-ops, and a duplicate
// add is signaled by the boolean return.
type CartKeeper interface {
	Add(domain.Product) bool
	Remove(id int64)
	UpdateQuantity(id int64, quantity int)
	Clear()
	Items() []domain.CartItem
	TotalItems() int
	TotalPrice() decimal.Decimal
	Summary() domain.CartSummary
}
