package service_test

import (
	"testing"

	"github.com/nvoronin/storefront/internal/core/domain"
	"github.com/nvoronin/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Red Shoes", Description: "comfortable running shoes", Brand: "Runex", Category: "mens-shoes"},
		{ID: 2, Title: "Blue Hat", Description: "wool winter hat", Brand: "Northway", Category: "mens-accessories"},
		{ID: 3, Title: "Galaxy S10", Description: "flagship phone", Brand: "Samsung", Category: "smart-phones"},
		{ID: 4, Title: "Office Chair", Description: "ergonomic chair", Category: "furniture"},
	}
}

func ids(ps []domain.Product) []int64 {
	out := make([]int64, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	t.Run("EmptyCriteriaIsIdentity", func(t *testing.T) {
		in := catalogFixture()

		out := service.FilterProducts(in, domain.FilterCriteria{
			SearchTerm: "", Category: "all",
		})

		assert.Equal(t, in, out)
	})

	t.Run("WhitespaceTermIsIdentity", func(t *testing.T) {
		in := catalogFixture()

		out := service.FilterProducts(in, domain.FilterCriteria{
			SearchTerm: "   \t ", Category: "all",
		})

		assert.Equal(t, in, out)
	})

	t.Run("OrSemanticsAcrossWords", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "shoes hat", Category: "all",
		})

		assert.Equal(t, []int64{1, 2}, ids(out))
	})

	t.Run("MatchesDescriptionAndBrand", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "ergonomic", Category: "all",
		})
		require.Len(t, out, 1)
		assert.Equal(t, int64(4), out[0].ID)

		out = service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "samsung", Category: "all",
		})
		require.Len(t, out, 1)
		assert.Equal(t, int64(3), out[0].ID)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "RED shOES", Category: "all",
		})

		assert.Equal(t, []int64{1}, ids(out))
	})

	t.Run("CategoryHyphenNormalization", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "", Category: "smart phones",
		})

		assert.Equal(t, []int64{3}, ids(out))
	})

	t.Run("CategoryExactSlug", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "", Category: "furniture",
		})

		assert.Equal(t, []int64{4}, ids(out))
	})

	t.Run("CategorySubstringAfterNormalization", func(t *testing.T) {
		// "mens" dehyphenates into both "mens shoes" and "mens accessories".
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "", Category: "mens",
		})

		assert.Equal(t, []int64{1, 2}, ids(out))
	})

	t.Run("FiltersComposeWithAnd", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "shoes hat", Category: "mens-shoes",
		})

		assert.Equal(t, []int64{1}, ids(out))
	})

	t.Run("NoMatchesYieldsEmpty", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "submarine", Category: "all",
		})

		assert.Empty(t, out)
	})

	t.Run("PreservesInputOrder", func(t *testing.T) {
		out := service.FilterProducts(catalogFixture(), domain.FilterCriteria{
			SearchTerm: "chair phone shoes", Category: "all",
		})

		assert.Equal(t, []int64{1, 3, 4}, ids(out))
	})
}
