// Package filter narrows a product list by free-text query, category and
// the favourites view. It holds no state and never mutates its arguments.
package filter

import (
	"strings"

	"github.com/DRSN-tech/pokeshop/internal/domain"
)

// ViewMode selects whether the whole catalogue or only favourites is considered.
type ViewMode string

const (
	ViewAll        ViewMode = "all"
	ViewFavourites ViewMode = "favourites"
)

func (m ViewMode) Valid() bool {
	return m == ViewAll || m == ViewFavourites
}

// Criteria is a full snapshot of the filter inputs for one query.
type Criteria struct {
	Query          string
	CategoryFilter domain.Category
	ViewMode       ViewMode
	FavouriteIDs   map[int64]struct{}
}

// DefaultCriteria matches every product.
func DefaultCriteria() Criteria {
	return Criteria{
		CategoryFilter: domain.CategoryAll,
		ViewMode:       ViewAll,
	}
}

// Normalize lowercases the query and trims surrounding whitespace.
func Normalize(query string) string {
	return strings.TrimSpace(strings.ToLower(query))
}

// Products returns the products satisfying every criterion, in input order.
func Products(products []domain.Product, c Criteria) []domain.Product {
	query := Normalize(c.Query)

	res := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesCategory(p, c.CategoryFilter) &&
			matchesQuery(p, query) &&
			matchesView(p, c.ViewMode, c.FavouriteIDs) {
			res = append(res, p)
		}
	}
	return res
}

func matchesCategory(p domain.Product, category domain.Category) bool {
	return category == domain.CategoryAll || p.Category == category
}

// query must already be normalized.
func matchesQuery(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Category.String()), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func matchesView(p domain.Product, mode ViewMode, favourites map[int64]struct{}) bool {
	if mode != ViewFavourites {
		return true
	}
	_, ok := favourites[p.ID]
	return ok
}
