package http

import (
	_ "github.com/DRSN-tech/storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases — срез бизнес-логики, который обслуживает роутер.
type UseCases struct {
	Auth         usecase.AuthUC
	Cart         usecase.CartUC
	Orders       usecase.OrderUC
	Catalog      usecase.CatalogUC
	Search       usecase.SearchUC
	Navigation   usecase.NavigationUC
	Notification usecase.NotificationUC
	History      usecase.HistoryUC
	Recommend    usecase.RecommendationUC
}

func (r *Router) Init(uc UseCases) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		sessionHandler := NewSessionHandler(uc.Auth, r.logger)
		cartHandler := NewCartHandler(uc.Cart, uc.Catalog, uc.Notification, r.logger)
		orderHandler := NewOrderHandler(uc.Orders, uc.Notification, uc.Navigation, r.logger)
		catalogHandler := NewCatalogHandler(uc.Catalog, uc.Search, uc.Recommend, r.logger)
		stateHandler := NewStateHandler(
			uc.Auth, uc.Cart, uc.Orders, uc.Catalog, uc.Search,
			uc.Navigation, uc.Notification, uc.History, uc.Recommend,
			r.logger,
		)

		registerSessionRoutes(v1, sessionHandler)
		registerCartRoutes(v1, cartHandler)
		registerOrderRoutes(v1, orderHandler)
		registerCatalogRoutes(v1, catalogHandler, stateHandler)
		registerStateRoutes(v1, stateHandler)
	})
}

func registerSessionRoutes(router chi.Router, handler *SessionHandler) {
	router.Route("/session", func(s chi.Router) {
		s.Post("/login", handler.login)
		s.Delete("/", handler.logout)
	})
}

func registerCartRoutes(router chi.Router, handler *CartHandler) {
	router.Route("/cart", func(c chi.Router) {
		c.Get("/", handler.getCart)
		c.Post("/items", handler.addItem)
		c.Delete("/items/{id}", handler.removeItem)
		c.Put("/items/{id}", handler.setQuantity)
	})
}

func registerOrderRoutes(router chi.Router, handler *OrderHandler) {
	router.Post("/checkout", handler.checkout)
	router.Get("/orders", handler.listOrders)
}

func registerCatalogRoutes(router chi.Router, handler *CatalogHandler, state *StateHandler) {
	router.Route("/products", func(p chi.Router) {
		p.Get("/", handler.listProducts)
		p.Get("/{id}", handler.getProduct)
		p.Post("/{id}/view", state.viewProduct)
	})
	router.Post("/search", handler.search)
	router.Get("/recommendations", handler.recommendations)
}

func registerStateRoutes(router chi.Router, handler *StateHandler) {
	router.Get("/state", handler.getState)
	router.Post("/navigation", handler.navigate)
	router.Post("/notification/dismiss", handler.dismissNotification)
}
