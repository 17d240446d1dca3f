package http

import (
	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
)

const priceScale = 2

type ProductResponse struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price" example:"19.99"`
	IsFavourite bool   `json:"is_favourite"`
	InBag       int    `json:"in_bag"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type FavouritesResponse struct {
	IDs []int64 `json:"ids"`
}

type FavouriteStateResponse struct {
	ProductID   int64 `json:"product_id"`
	IsFavourite bool  `json:"is_favourite"`
}

type BagItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type BagLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price" example:"19.99"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal" example:"39.98"`
}

type BagResponse struct {
	Lines      []BagLineResponse `json:"lines"`
	TotalItems int               `json:"total_items"`
	TotalPrice string            `json:"total_price" example:"39.98"`
	Currency   string            `json:"currency" example:"£"`
	Label      string            `json:"label" example:"2 items · Total: £39.98"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// MAPPERS

func toProductResponse(v *usecase.ProductView) ProductResponse {
	return ProductResponse{
		ID:          v.Product.ID,
		Slug:        v.Product.Slug,
		Name:        v.Product.Name,
		Description: v.Product.Description,
		Category:    v.Product.Category.String(),
		Price:       v.Product.Price.StringFixed(priceScale),
		IsFavourite: v.IsFavourite,
		InBag:       v.InBag,
	}
}

func toProductListResponse(res *usecase.SearchProductsRes) ProductListResponse {
	products := make([]ProductResponse, len(res.Products))
	for i := range res.Products {
		products[i] = toProductResponse(&res.Products[i])
	}

	return ProductListResponse{
		Products: products,
		Count:    len(products),
	}
}

func toCategoriesResponse(categories []domain.Category) CategoriesResponse {
	res := make([]string, len(categories))
	for i, c := range categories {
		res[i] = c.String()
	}
	return CategoriesResponse{Categories: res}
}

func toBagResponse(summary *usecase.BagSummary, currency string) BagResponse {
	lines := make([]BagLineResponse, len(summary.Lines))
	for i, l := range summary.Lines {
		lines[i] = BagLineResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price.StringFixed(priceScale),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal.StringFixed(priceScale),
		}
	}

	return BagResponse{
		Lines:      lines,
		TotalItems: summary.TotalItems,
		TotalPrice: summary.TotalPrice.StringFixed(priceScale),
		Currency:   currency,
		Label:      summary.Label(currency),
	}
}
