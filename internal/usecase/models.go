package usecase

import (
	"fmt"

	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/DRSN-tech/pokeshop/internal/filter"
	"github.com/shopspring/decimal"
)

// SearchProductsReq carries the raw filter inputs of the products page.
type SearchProductsReq struct {
	Query    string
	Category domain.Category
	ViewMode filter.ViewMode
}

// ProductView is a product together with the shopper's state for it.
type ProductView struct {
	Product     domain.Product
	IsFavourite bool
	InBag       int
}

type SearchProductsRes struct {
	Products []ProductView
}

// BagLine is one product in the bag.
type BagLine struct {
	Product  domain.Product
	Quantity int
	Subtotal decimal.Decimal
}

// BagSummary lists bag lines in catalogue order with totals.
type BagSummary struct {
	Lines      []BagLine
	TotalItems int
	TotalPrice decimal.Decimal
}

// Label renders the summary line shown above the bag, e.g. "2 items · Total: £39.98".
func (s *BagSummary) Label(currency string) string {
	noun := "items"
	if s.TotalItems == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s · Total: %s%s", s.TotalItems, noun, currency, s.TotalPrice.StringFixed(2))
}

// EVENTS

type EventType string

const (
	EventFavouriteAdded   EventType = "favourite_added"
	EventFavouriteRemoved EventType = "favourite_removed"
	EventBagItemAdded     EventType = "bag_item_added"
	EventBagItemRemoved   EventType = "bag_item_removed"
	EventBagCleared       EventType = "bag_cleared"
)

// StorefrontEvent describes one change of shopper state.
// ProductID is zero for EventBagCleared.
type StorefrontEvent struct {
	Type      EventType
	ProductID int64
	Quantity  int
}

// MAPPERS

func NewSearchProductsReq(query string, category domain.Category, viewMode filter.ViewMode) *SearchProductsReq {
	return &SearchProductsReq{
		Query:    query,
		Category: category,
		ViewMode: viewMode,
	}
}

func NewProductView(product domain.Product, isFavourite bool, inBag int) ProductView {
	return ProductView{
		Product:     product,
		IsFavourite: isFavourite,
		InBag:       inBag,
	}
}

func NewBagLine(product domain.Product, quantity int) BagLine {
	return BagLine{
		Product:  product,
		Quantity: quantity,
		Subtotal: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func NewStorefrontEvent(eventType EventType, productID int64, quantity int) *StorefrontEvent {
	return &StorefrontEvent{
		Type:      eventType,
		ProductID: productID,
		Quantity:  quantity,
	}
}
