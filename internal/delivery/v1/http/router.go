package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/storefront-backend/docs" // Импорт описания API для swagger
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const serviceBanner = "Lumière Furniture API"

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(corsOrigins []string, catalogUC usecase.CatalogUC, cartUC usecase.CartUC, orderUC usecase.OrderUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(r.requestLogger)
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api", func(api chi.Router) {
		api.Get("/", banner)

		prHandler := NewProductHandler(catalogUC, r.logger)
		registerProductRoutes(api, prHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(api, cartHandler)

		orderHandler := NewOrderHandler(orderUC, r.logger)
		registerOrderRoutes(api, orderHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/featured", prHandler.featuredProducts)
		pr.Get("/{id}", prHandler.getProduct)
	})
	router.Get("/categories", prHandler.listCategories)
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Post("/create", cartHandler.createCart)
		cr.Get("/{id}", cartHandler.getCart)
		cr.Post("/{id}/add", cartHandler.addItem)
		cr.Post("/{id}/remove", cartHandler.removeItem)
		cr.Post("/{id}/update", cartHandler.updateQuantity)
	})
}

func registerOrderRoutes(router chi.Router, orderHandler *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", orderHandler.placeOrder)
		or.Get("/{id}", orderHandler.getOrder)
	})
}

// banner
//
//	@Summary	Проверка доступности API
//	@Tags		service
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Router		/ [get]
func banner(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, MessageResponse{Message: serviceBanner})
}

func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s -> %d (%v) request_id=%s",
			req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}
