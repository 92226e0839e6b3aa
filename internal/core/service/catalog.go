package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/nvoronin/storefront/internal/core/port"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var _ port.CatalogBrowser = (*CatalogService)(nil)

// CatalogService owns the session's catalog snapshot. Products and
// categories refresh independently: either fetch may finish first, and a
// failure of one never blocks or invalidates the other.
type CatalogService struct {
	client           port.CatalogClient
	placeholderImage string

	mu         sync.Mutex
	products   []domain.Product
	categories []string
}

func NewCatalog(client port.CatalogClient, placeholderImage string) *CatalogService {
	return &CatalogService{client: client, placeholderImage: placeholderImage}
}

// Refresh fetches products and categories concurrently. Only the product
// fetch outcome is returned; a category failure degrades to an empty
// category list and is logged inside RefreshCategories.
func (s *CatalogService) Refresh(ctx context.Context) error {
	var wg sync.WaitGroup
	var productsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		productsErr = s.RefreshProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		s.RefreshCategories(ctx)
	}()
	wg.Wait()

	return productsErr
}

// RefreshProducts replaces the product snapshot from the catalog source.
// On failure the previous snapshot stays; there is no automatic retry.
func (s *CatalogService) RefreshProducts(ctx context.Context) error {
	const op = "CatalogService.RefreshProducts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	records, err := s.client.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrCatalogFetch, err)
	}

	products := s.normalizeRecords(records)

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	slog.Info("catalog refreshed", "op", op, "nProducts", len(products))
	return nil
}

// RefreshCategories never surfaces an error: when the fetch fails the
// category filter degrades to "all" only.
func (s *CatalogService) RefreshCategories(ctx context.Context) {
	const op = "CatalogService.RefreshCategories"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		log.Warn("skipped", "err", err)
		return
	}

	categories, err := s.client.FetchCategories(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrCategoryFetch, err)
		log.Warn("failed to fetch categories", "err", err)
		return
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
}

func (s *CatalogService) normalizeRecords(rs []domain.CatalogRecord) []domain.Product {
	const op = "CatalogService.normalizeRecords"
	log := slog.With("op", op)

	ps := make([]domain.Product, 0, len(rs))
	seen := make(map[int64]struct{}, len(rs))
	for _, r := range rs {
		p, err := normalizeRecord(r, s.placeholderImage)
		if err != nil {
			log.Warn("dropped catalog record", "err", err)
			continue
		}
		if _, dup := seen[p.ID]; dup {
			log.Warn("dropped catalog record",
				"err", fmt.Errorf("%w: duplicate id", domain.ErrMalformedRecord),
				"productID", p.ID,
			)
			continue
		}
		seen[p.ID] = struct{}{}
		ps = append(ps, p)
	}
	return ps
}

// Search applies the criteria to the current snapshot. The full snapshot
// is rescanned on every call; no index is maintained.
func (s *CatalogService) Search(c domain.FilterCriteria) []domain.Product {
	s.mu.Lock()
	products := s.products
	s.mu.Unlock()

	return FilterProducts(products, c)
}

// Categories returns the known category slugs with humanized display
// labels ("smart-phones" becomes "Smart Phones").
func (s *CatalogService) Categories() []domain.Category {
	s.mu.Lock()
	slugs := s.categories
	s.mu.Unlock()

	caser := cases.Title(language.English)
	cs := make([]domain.Category, 0, len(slugs))
	for _, slug := range slugs {
		cs = append(cs, domain.Category{
			Slug:  slug,
			Label: caser.String(dehyphenate(slug)),
		})
	}
	return cs
}

func (s *CatalogService) Product(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
