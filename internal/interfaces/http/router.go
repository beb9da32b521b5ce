package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-gadget-api/internal/application/auth"
	"github.com/jhoicas/pos-gadget-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *usecase.SaleUseCase
	OrderUC   *usecase.OrderUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
// Público: login y setup. Todo lo demás exige Bearer Token: el gate de auth
// cubre uniformemente cada endpoint mutante (los OPTIONS de preflight
// responden antes, en el middleware de CORS o en el bypass del gate).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Get("/setup", authHandler.Setup)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/change-password", authHandler.ChangePassword)
	protected.Post("/unlock-dashboard", authHandler.UnlockDashboard)
	protected.Post("/change-dashboard-password", authHandler.ChangeDashboardPassword)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	orders := protected.Group("/pending-orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Delete("/:id", orderHandler.Delete)
}
