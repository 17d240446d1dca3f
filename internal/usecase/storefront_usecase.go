package usecase

import (
	"context"

	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/DRSN-tech/pokeshop/internal/filter"
	"github.com/DRSN-tech/pokeshop/pkg/e"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/shopspring/decimal"
)

var _ StorefrontUC = (*StorefrontUseCase)(nil)

// StorefrontUseCase ties the catalogue, the filter engine and the shopper's
// favourites and bag together.
type StorefrontUseCase struct {
	catalogRepo CatalogRepository
	favourites  *Favourites
	bag         *Bag
	producer    EventProducer
	logger      logger.Logger
}

func NewStorefrontUC(
	catalogRepo CatalogRepository,
	favourites *Favourites,
	bag *Bag,
	producer EventProducer,
	logger logger.Logger,
) *StorefrontUseCase {
	if producer == nil {
		producer = NopProducer{}
	}

	return &StorefrontUseCase{
		catalogRepo: catalogRepo,
		favourites:  favourites,
		bag:         bag,
		producer:    producer,
		logger:      logger,
	}
}

// SearchProducts returns the catalogue narrowed by the request.
func (s *StorefrontUseCase) SearchProducts(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error) {
	const op = "StorefrontUseCase.SearchProducts"

	criteria, err := s.criteria(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	matched := filter.Products(products, criteria)

	bag := s.bag.Snapshot()
	views := make([]ProductView, 0, len(matched))
	for _, p := range matched {
		_, fav := criteria.FavouriteIDs[p.ID]
		views = append(views, NewProductView(p, fav, bag[p.ID]))
	}

	return &SearchProductsRes{Products: views}, nil
}

// GetProduct returns one product with the shopper's state for it.
func (s *StorefrontUseCase) GetProduct(ctx context.Context, id int64) (*ProductView, error) {
	const op = "StorefrontUseCase.GetProduct"

	product, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	view := NewProductView(product, s.favourites.Contains(id), s.bag.Quantity(id))
	return &view, nil
}

func (s *StorefrontUseCase) Categories() []domain.Category {
	return domain.Categories()
}

func (s *StorefrontUseCase) Favourites(ctx context.Context) []int64 {
	return s.favourites.IDs()
}

// AddFavourite marks an existing product as favourite. Repeated calls are no-ops.
func (s *StorefrontUseCase) AddFavourite(ctx context.Context, id int64) error {
	const op = "StorefrontUseCase.AddFavourite"

	if _, err := s.getProduct(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if s.favourites.Add(ctx, id) {
		s.publish(ctx, NewStorefrontEvent(EventFavouriteAdded, id, 0))
	}

	return nil
}

// RemoveFavourite accepts ids that left the catalogue so stale entries can be dropped.
func (s *StorefrontUseCase) RemoveFavourite(ctx context.Context, id int64) error {
	const op = "StorefrontUseCase.RemoveFavourite"

	if id <= 0 {
		return e.Wrap(op, e.ErrInvalidProductID)
	}

	if s.favourites.Remove(ctx, id) {
		s.publish(ctx, NewStorefrontEvent(EventFavouriteRemoved, id, 0))
	}

	return nil
}

// ToggleFavourite flips the favourite flag and returns the new value.
func (s *StorefrontUseCase) ToggleFavourite(ctx context.Context, id int64) (bool, error) {
	const op = "StorefrontUseCase.ToggleFavourite"

	if _, err := s.getProduct(ctx, id); err != nil {
		return false, e.Wrap(op, err)
	}

	isFavourite := s.favourites.Toggle(ctx, id)
	if isFavourite {
		s.publish(ctx, NewStorefrontEvent(EventFavouriteAdded, id, 0))
	} else {
		s.publish(ctx, NewStorefrontEvent(EventFavouriteRemoved, id, 0))
	}

	return isFavourite, nil
}

// GetBag lists bag lines in catalogue order. Ids missing from the catalogue are skipped.
func (s *StorefrontUseCase) GetBag(ctx context.Context) (*BagSummary, error) {
	const op = "StorefrontUseCase.GetBag"

	products, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := s.bag.Snapshot()
	summary := &BagSummary{
		Lines:      make([]BagLine, 0, len(items)),
		TotalPrice: decimal.Zero,
	}

	for _, p := range products {
		qty := items[p.ID]
		if qty <= 0 {
			continue
		}

		line := NewBagLine(p, qty)
		summary.Lines = append(summary.Lines, line)
		summary.TotalItems += qty
		summary.TotalPrice = summary.TotalPrice.Add(line.Subtotal)
	}

	return summary, nil
}

// AddToBag puts one more unit of an existing product in the bag.
func (s *StorefrontUseCase) AddToBag(ctx context.Context, id int64) (int, error) {
	const op = "StorefrontUseCase.AddToBag"

	if _, err := s.getProduct(ctx, id); err != nil {
		return 0, e.Wrap(op, err)
	}

	qty := s.bag.Increment(ctx, id)
	s.publish(ctx, NewStorefrontEvent(EventBagItemAdded, id, qty))

	return qty, nil
}

// RemoveFromBag takes one unit out of the bag. Absent ids are a no-op.
func (s *StorefrontUseCase) RemoveFromBag(ctx context.Context, id int64) (int, error) {
	const op = "StorefrontUseCase.RemoveFromBag"

	if id <= 0 {
		return 0, e.Wrap(op, e.ErrInvalidProductID)
	}

	if s.bag.Quantity(id) == 0 {
		return 0, nil
	}

	qty := s.bag.Decrement(ctx, id)
	s.publish(ctx, NewStorefrontEvent(EventBagItemRemoved, id, qty))

	return qty, nil
}

func (s *StorefrontUseCase) ClearBag(ctx context.Context) {
	s.bag.Clear(ctx)
	s.publish(ctx, NewStorefrontEvent(EventBagCleared, 0, 0))
}

// criteria validates the request and builds a filter snapshot.
func (s *StorefrontUseCase) criteria(req *SearchProductsReq) (filter.Criteria, error) {
	c := filter.DefaultCriteria()
	if req == nil {
		c.FavouriteIDs = s.favourites.Set()
		return c, nil
	}

	if req.Category != "" {
		if req.Category != domain.CategoryAll && !req.Category.Valid() {
			return filter.Criteria{}, e.ErrUnknownCategory
		}
		c.CategoryFilter = req.Category
	}

	if req.ViewMode != "" {
		if !req.ViewMode.Valid() {
			return filter.Criteria{}, e.ErrUnknownViewMode
		}
		c.ViewMode = req.ViewMode
	}

	c.Query = req.Query
	c.FavouriteIDs = s.favourites.Set()

	return c, nil
}

func (s *StorefrontUseCase) getProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, e.ErrInvalidProductID
	}

	return s.catalogRepo.GetByID(ctx, id)
}

// publish is best-effort: shopper state is already saved when it runs.
func (s *StorefrontUseCase) publish(ctx context.Context, event *StorefrontEvent) {
	const op = "StorefrontUseCase.publish"

	if err := s.producer.WriteEvent(ctx, event); err != nil {
		s.logger.Warnf("failed to publish %s event: %v", event.Type, e.Wrap(op, err))
	}
}
