package service

import (
	"strings"

	"github.com/nvoronin/storefront/internal/core/domain"
)

// FilterProducts recomputes the filtered catalog view. It is pure and
// preserves the input order; there is no ranking.
//
// Text matching is OR across search words: a product is retained when
// any word of the search term occurs as a substring of its combined
// title, description, brand and category text. The text and category
// filters compose by AND.
func FilterProducts(ps []domain.Product, c domain.FilterCriteria) []domain.Product {
	words := strings.Fields(strings.ToLower(c.SearchTerm))
	category := strings.ToLower(c.Category)
	categoryActive := category != "" && category != "all"

	filtered := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if len(words) > 0 && !matchesAnyWord(p, words) {
			continue
		}
		if categoryActive && !matchesCategory(p, category) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesAnyWord(p domain.Product, words []string) bool {
	haystack := productText(p)
	for _, w := range words {
		if strings.Contains(haystack, w) {
			return true
		}
	}
	return false
}

func productText(p domain.Product) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Title, p.Description, p.Brand, p.Category} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// matchesCategory retains a product whose raw lowercased category equals
// the selection, or whose dehyphenated category contains the
// dehyphenated selection. Covers slugs whose hyphenation differs from
// the filter value ("smart-phones" vs "smart phones").
func matchesCategory(p domain.Product, selected string) bool {
	productCat := strings.ToLower(p.Category)
	if productCat == selected {
		return true
	}
	return strings.Contains(dehyphenate(productCat), dehyphenate(selected))
}

func dehyphenate(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
