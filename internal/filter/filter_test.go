package filter

import (
	"testing"

	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(id int64, name string, category domain.Category, description string) domain.Product {
	return domain.NewProduct(id, "", name, category, decimal.RequireFromString("19.99"), description)
}

func favourites(ids ...int64) map[int64]struct{} {
	res := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}

func names(ps []domain.Product) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.Name
	}
	return res
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"LowercasesAndTrims", "  PikAChu  ", "pikachu"},
		{"WhitespaceOnly", "   ", ""},
		{"Empty", "", ""},
		{"TabsAndNewlines", "\tPoké Ball\n", "poké ball"},
		{"InnerSpacesKept", " Poké  Ball ", "poké  ball"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "must be idempotent")
		})
	}
}

func TestProducts(t *testing.T) {
	base := []domain.Product{
		makeProduct(1, "Pikachu Plush", domain.CategoryPlush, "Soft Pikachu plush toy."),
		makeProduct(2, "Charizard Hoodie", domain.CategoryApparel, "Soft Pikachu plush toy."),
		makeProduct(3, "Bulbasaur Mug", domain.CategoryHome, "Soft Pikachu plush toy."),
	}

	run := func(mod func(*Criteria)) []domain.Product {
		c := DefaultCriteria()
		c.FavouriteIDs = favourites()
		if mod != nil {
			mod(&c)
		}
		return Products(base, c)
	}

	t.Run("NoFiltersReturnsAll", func(t *testing.T) {
		assert.Equal(t, base, run(nil))
	})

	t.Run("ByCategory", func(t *testing.T) {
		res := run(func(c *Criteria) { c.CategoryFilter = domain.CategoryPlush })
		require.Len(t, res, 1)
		assert.Equal(t, "Pikachu Plush", res[0].Name)
	})

	t.Run("ByQueryInName", func(t *testing.T) {
		res := run(func(c *Criteria) { c.Query = "hoodie" })
		require.Len(t, res, 1)
		assert.Equal(t, "Charizard Hoodie", res[0].Name)
	})

	t.Run("ByQueryInCategory", func(t *testing.T) {
		res := run(func(c *Criteria) { c.Query = "  APPAREL " })
		assert.Equal(t, []string{"Charizard Hoodie"}, names(res))
	})

	t.Run("ByQueryInDescription", func(t *testing.T) {
		ps := []domain.Product{
			makeProduct(10, "Eevee Figure", domain.CategoryFigure, "Collectible Eevee figure for your shelf."),
			makeProduct(11, "Gengar Beanie", domain.CategoryApparel, "Keeps you warm."),
		}
		c := DefaultCriteria()
		c.Query = "shelf"
		assert.Equal(t, []string{"Eevee Figure"}, names(Products(ps, c)))
	})

	t.Run("SubstringNotWord", func(t *testing.T) {
		res := run(func(c *Criteria) { c.Query = "zard" })
		assert.Equal(t, []string{"Charizard Hoodie"}, names(res))
	})

	t.Run("WhitespaceQueryMatchesAll", func(t *testing.T) {
		assert.Len(t, run(func(c *Criteria) { c.Query = "   " }), 3)
	})

	t.Run("FavouritesView", func(t *testing.T) {
		res := run(func(c *Criteria) {
			c.ViewMode = ViewFavourites
			c.FavouriteIDs = favourites(1, 3)
		})
		assert.Equal(t, []string{"Pikachu Plush", "Bulbasaur Mug"}, names(res))
	})

	t.Run("FavouritesIgnoredInAllView", func(t *testing.T) {
		res := run(func(c *Criteria) { c.FavouriteIDs = favourites(2) })
		assert.Len(t, res, 3)
	})

	t.Run("FavouritesNarrowedByCategory", func(t *testing.T) {
		res := run(func(c *Criteria) {
			c.ViewMode = ViewFavourites
			c.FavouriteIDs = favourites(1, 3)
			c.CategoryFilter = domain.CategoryHome
		})
		assert.Equal(t, []string{"Bulbasaur Mug"}, names(res))
	})

	t.Run("NilFavouritesInFavouritesView", func(t *testing.T) {
		c := DefaultCriteria()
		c.ViewMode = ViewFavourites
		assert.Empty(t, Products(base, c))
	})

	t.Run("ConjunctiveEmpty", func(t *testing.T) {
		res := run(func(c *Criteria) {
			c.Query = "nonexistent"
			c.CategoryFilter = domain.CategoryPlush
			c.ViewMode = ViewFavourites
		})
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})

	t.Run("UnknownCategoryMatchesNothing", func(t *testing.T) {
		res := run(func(c *Criteria) { c.CategoryFilter = domain.Category("Cards") })
		assert.Empty(t, res)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, Products(nil, DefaultCriteria()))
	})
}

func TestProductsPreservesOrderAndInputs(t *testing.T) {
	catalog := domain.Catalog()
	snapshot := domain.Catalog()
	favs := favourites(6, 2, 4)

	queries := []string{"", "a", "mug", "home", "  E  ", "zzz"}
	categories := append(domain.Categories(), domain.CategoryAll)
	modes := []ViewMode{ViewAll, ViewFavourites}

	for _, q := range queries {
		for _, cat := range categories {
			for _, m := range modes {
				c := Criteria{Query: q, CategoryFilter: cat, ViewMode: m, FavouriteIDs: favs}
				res := Products(catalog, c)

				assertSubsequence(t, catalog, res)
				assert.Equal(t, res, Products(catalog, c), "must be deterministic")
			}
		}
	}

	assert.Equal(t, snapshot, catalog, "input must not be mutated")
	assert.Equal(t, favourites(6, 2, 4), favs, "favourites must not be mutated")
}

func assertSubsequence(t *testing.T, all, sub []domain.Product) {
	t.Helper()
	i := 0
	for _, p := range all {
		if i < len(sub) && sub[i].ID == p.ID {
			i++
		}
	}
	assert.Equal(t, len(sub), i, "result is not an ordered subsequence of the input")
}

func TestViewModeValid(t *testing.T) {
	assert.True(t, ViewAll.Valid())
	assert.True(t, ViewFavourites.Valid())
	assert.False(t, ViewMode("favorites").Valid())
	assert.False(t, ViewMode("").Valid())
}
