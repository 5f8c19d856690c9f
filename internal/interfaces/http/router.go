package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stocktrack-api/internal/application/auth"
	"github.com/tu-usuario/stocktrack-api/internal/application/report"
	"github.com/tu-usuario/stocktrack-api/internal/application/stock"
	"github.com/tu-usuario/stocktrack-api/internal/application/usecase"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	AdjustmentUC *stock.AdjustmentUseCase
	ReportUC     *report.StockReportUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	mutators := RequireRole(entity.RoleAdmin, entity.RoleOperator)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido)
	users := protected.Group("/users")
	users.Get("/me", authHandler.Me)

	// Categories (protegido; mutaciones por rol)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", mutators, categoryHandler.Create)
	categories.Put("/:id", mutators, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products (protegido; mutaciones por rol)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", mutators, productHandler.Create)
	products.Put("/:id", mutators, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stock history (protegido; toda mutación pasa por el motor de ajustes)
	history := protected.Group("/stock-history")
	historyHandler := NewStockHistoryHandler(deps.AdjustmentUC)
	history.Get("/", historyHandler.List)
	history.Get("/:id", historyHandler.GetByID)
	history.Post("/", mutators, historyHandler.RecordChange)
	history.Put("/:id", mutators, historyHandler.ReviseChange)
	history.Delete("/:id", mutators, historyHandler.RemoveChange)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock", reportHandler.StockReport)
}
