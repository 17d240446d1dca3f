package http

import (
	"net/http"

	"github.com/DRSN-tech/pokeshop/internal/domain"
	"github.com/DRSN-tech/pokeshop/internal/filter"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
)

type StorefrontHandler struct {
	storefrontUsecase usecase.StorefrontUC
	currency          string
	logger            logger.Logger
}

func NewStorefrontHandler(storefrontUsecase usecase.StorefrontUC, currency string, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{storefrontUsecase: storefrontUsecase, currency: currency, logger: logger}
}

// searchProducts
//
//	@Summary		Search the catalogue
//	@Description	Filters products by free text, category and view. Empty parameters match everything.
//	@Tags			products
//	@Produce		json
//	@Param			q			query		string	false	"Free text, matched case-insensitively against name, category and description"
//	@Param			category	query		string	false	"All, Plush, Apparel, Figure or Home"	default(All)
//	@Param			view		query		string	false	"all or favourites"						default(all)
//	@Success		200			{object}	ProductListResponse
//	@Failure		400			{object}	ErrorResponse	"Unknown category or view"
//	@Router			/products [get]
func (h *StorefrontHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := usecase.NewSearchProductsReq(
		q.Get("q"),
		domain.Category(q.Get("category")),
		filter.ViewMode(q.Get("view")),
	)

	res, err := h.storefrontUsecase.SearchProducts(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(res))
}

// getProduct
//
//	@Summary		Get a product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse	"Invalid id"
//	@Failure		404	{object}	ErrorResponse	"Unknown product"
//	@Router			/products/{id} [get]
func (h *StorefrontHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	view, err := h.storefrontUsecase.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(view))
}

// listCategories
//
//	@Summary	List categories
//	@Tags		products
//	@Produce	json
//	@Success	200	{object}	CategoriesResponse
//	@Router		/categories [get]
func (h *StorefrontHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCategoriesResponse(h.storefrontUsecase.Categories()))
}

// listFavourites
//
//	@Summary	List favourite product ids
//	@Tags		favourites
//	@Produce	json
//	@Success	200	{object}	FavouritesResponse
//	@Router		/favourites [get]
func (h *StorefrontHandler) listFavourites(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, FavouritesResponse{IDs: h.storefrontUsecase.Favourites(r.Context())})
}

// addFavourite
//
//	@Summary	Mark a product as favourite
//	@Tags		favourites
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	FavouriteStateResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/favourites/{id} [post]
func (h *StorefrontHandler) addFavourite(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.storefrontUsecase.AddFavourite(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FavouriteStateResponse{ProductID: id, IsFavourite: true})
}

// removeFavourite
//
//	@Summary	Unmark a favourite
//	@Tags		favourites
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	FavouriteStateResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/favourites/{id} [delete]
func (h *StorefrontHandler) removeFavourite(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.storefrontUsecase.RemoveFavourite(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FavouriteStateResponse{ProductID: id, IsFavourite: false})
}

// toggleFavourite
//
//	@Summary	Toggle a favourite
//	@Tags		favourites
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	FavouriteStateResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/favourites/{id}/toggle [post]
func (h *StorefrontHandler) toggleFavourite(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	isFavourite, err := h.storefrontUsecase.ToggleFavourite(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, FavouriteStateResponse{ProductID: id, IsFavourite: isFavourite})
}

// getBag
//
//	@Summary	Show the bag
//	@Tags		bag
//	@Produce	json
//	@Success	200	{object}	BagResponse
//	@Router		/bag [get]
func (h *StorefrontHandler) getBag(w http.ResponseWriter, r *http.Request) {
	summary, err := h.storefrontUsecase.GetBag(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toBagResponse(summary, h.currency))
}

// addToBag
//
//	@Summary	Add one unit to the bag
//	@Tags		bag
//	@Produce	json
//	@Param		id	path		int	true	"Product id"
//	@Success	200	{object}	BagItemResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/bag/items/{id} [post]
func (h *StorefrontHandler) addToBag(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	qty, err := h.storefrontUsecase.AddToBag(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, BagItemResponse{ProductID: id, Quantity: qty})
}

// removeFromBag
//
//	@Summary		Take one unit out of the bag
//	@Description	The line is removed when its quantity reaches zero.
//	@Tags			bag
//	@Produce		json
//	@Param			id	path		int	true	"Product id"
//	@Success		200	{object}	BagItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Router			/bag/items/{id} [delete]
func (h *StorefrontHandler) removeFromBag(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	qty, err := h.storefrontUsecase.RemoveFromBag(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, BagItemResponse{ProductID: id, Quantity: qty})
}

// clearBag
//
//	@Summary	Empty the bag
//	@Tags		bag
//	@Success	204
//	@Router		/bag [delete]
func (h *StorefrontHandler) clearBag(w http.ResponseWriter, r *http.Request) {
	h.storefrontUsecase.ClearBag(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorefrontHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		h.logger.Errorf(err, "%s %s", r.Method, r.URL.Path)
	} else {
		h.logger.Warnf("%d %s: %s", code, msg, err.Error())
	}

	WriteError(w, err)
}
