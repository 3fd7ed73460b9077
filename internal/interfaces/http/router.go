package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	AlertUC   *usecase.AlertUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	// Alertas por empresa
	alertHandler := NewAlertHandler(deps.AlertUC)
	api.Get("/companies/:company_id/alerts/low-stock", alertHandler.LowStock)
}
