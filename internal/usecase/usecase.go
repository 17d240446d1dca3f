package usecase

import (
	"context"

	"github.com/DRSN-tech/pokeshop/internal/domain"
)

type StorefrontUC interface {
	SearchProducts(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error)
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
	Categories() []domain.Category

	Favourites(ctx context.Context) []int64
	AddFavourite(ctx context.Context, id int64) error
	RemoveFavourite(ctx context.Context, id int64) error
	ToggleFavourite(ctx context.Context, id int64) (bool, error)

	GetBag(ctx context.Context) (*BagSummary, error)
	AddToBag(ctx context.Context, id int64) (int, error)
	RemoveFromBag(ctx context.Context, id int64) (int, error)
	ClearBag(ctx context.Context)
}
