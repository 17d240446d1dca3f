package usecase

import (
	"context"

	"github.com/DRSN-tech/pokeshop/internal/domain"
)

// KeyValueRepository stores opaque values under string keys.
// Get returns e.ErrKeyNotFound when nothing is stored under key.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CatalogRepository gives read-only access to the product catalogue.
// GetByID returns e.ErrProductNotFound for unknown ids.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (domain.Product, error)
}
