package memory

import (
	"context"

	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/e"
)

var _ usecase.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo serves a fixed product list.
type CatalogRepo struct {
	products []domain.Product
	byID     map[int64]int
}

// NewCatalogRepo copies products; later changes to the argument are not observed.
func NewCatalogRepo(products []domain.Product) *CatalogRepo {
	r := &CatalogRepo{
		products: make([]domain.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	copy(r.products, products)
	for i, p := range r.products {
		r.byID[p.ID] = i
	}
	return r
}

// NewStaticCatalogRepo serves the built-in catalogue.
func NewStaticCatalogRepo() *CatalogRepo {
	return NewCatalogRepo(domain.Catalog())
}

func (r *CatalogRepo) List(ctx context.Context) ([]domain.Product, error) {
	res := make([]domain.Product, len(r.products))
	copy(res, r.products)
	return res, nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, e.ErrProductNotFound
	}
	return r.products[i], nil
}
