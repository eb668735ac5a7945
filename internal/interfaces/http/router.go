package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"

	"github.com/jhoicas/FoodOrder-api/internal/application/auth"
	"github.com/jhoicas/FoodOrder-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *usecase.CatalogUseCase
	OrderUC   *usecase.OrderUseCase
	Sessions  *session.Store
	JWTSecret string
	Logger    zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Logger))
	requireAuth := AuthMiddleware(deps.Sessions, deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/user", requireAuth, authHandler.Me)

	// Catálogo (público)
	restaurantHandler := NewRestaurantHandler(deps.CatalogUC)
	api.Get("/restaurants", restaurantHandler.List)
	api.Get("/restaurants/:id", restaurantHandler.GetByID)
	api.Get("/restaurants/:id/menu", restaurantHandler.Menu)

	// Pedidos (protegido)
	orders := api.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id/receipt", orderHandler.Receipt)
}
