package http

import (
	"net/http"

	_ "github.com/DRSN-tech/pokeshop/docs" // generated swagger docs
	"github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/internal/usecase"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(storefrontUC usecase.StorefrontUC, storefrontCfg *cfg.StorefrontCfg) {
	r.router.Use(middleware.RequestID, middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		handler := NewStorefrontHandler(storefrontUC, storefrontCfg.CurrencySymbol, r.logger)
		registerProductRoutes(v1, handler)
		registerFavouriteRoutes(v1, handler)
		registerBagRoutes(v1, handler)
	})
}

func registerProductRoutes(router chi.Router, h *StorefrontHandler) {
	router.Get("/categories", h.listCategories)
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.searchProducts)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerFavouriteRoutes(router chi.Router, h *StorefrontHandler) {
	router.Route("/favourites", func(fr chi.Router) {
		fr.Get("/", h.listFavourites)
		fr.Post("/{id}", h.addFavourite)
		fr.Delete("/{id}", h.removeFavourite)
		fr.Post("/{id}/toggle", h.toggleFavourite)
	})
}

func registerBagRoutes(router chi.Router, h *StorefrontHandler) {
	router.Route("/bag", func(br chi.Router) {
		br.Get("/", h.getBag)
		br.Delete("/", h.clearBag)
		br.Post("/items/{id}", h.addToBag)
		br.Delete("/items/{id}", h.removeFromBag)
	})
}
