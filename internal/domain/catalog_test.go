package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("UniquePositiveIDs", func(t *testing.T) {
		seen := make(map[int64]bool)
		for _, p := range Catalog() {
			assert.Positive(t, p.ID)
			assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
		}
	})

	t.Run("ValidCategoriesAndPrices", func(t *testing.T) {
		for _, p := range Catalog() {
			assert.True(t, p.Category.Valid(), "product %d", p.ID)
			assert.False(t, p.Price.IsNegative(), "product %d", p.ID)
		}
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		first := Catalog()
		first[0].Name = "changed"
		assert.Equal(t, "Pikachu Plush", Catalog()[0].Name)
	})
}

func TestProductByID(t *testing.T) {
	p, ok := ProductByID(3)
	require.True(t, ok)
	assert.Equal(t, "Charizard Figure", p.Name)
	assert.Equal(t, "29.99", p.Price.StringFixed(2))

	_, ok = ProductByID(42)
	assert.False(t, ok)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid())
	}
	assert.False(t, CategoryAll.Valid())
	assert.False(t, Category("plush").Valid())
	assert.False(t, Category("").Valid())
}
