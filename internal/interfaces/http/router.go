package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/muebleria-stock/internal/application/inventory"
	"github.com/jhoicas/muebleria-stock/internal/application/usecase"
)

// Roles de la aplicación.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleConsulta  = "consulta"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ApplyAdjustment *inventory.ApplyAdjustmentUseCase
	History         *inventory.HistoryUseCase
	Aggregate       *inventory.AggregateUseCase
	StockAdmin      *inventory.StockAdminUseCase
	VerifyLedger    *inventory.VerifyLedgerUseCase
	HistoryReport   HistoryReportGenerator
	WarehouseUC     *usecase.WarehouseUseCase
	ProductUC       *usecase.ProductUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Todas las rutas /api requieren Bearer
// Token; las escrituras exigen además rol de administración.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	anyRole := RequireRole(RoleAdmin, RoleBodeguero, RoleConsulta)
	canAdjust := RequireRole(RoleAdmin, RoleBodeguero)
	adminOnly := RequireRole(RoleAdmin)

	// Motor de ajustes e historial
	inv := api.Group("/inventory")
	adjustmentHandler := NewAdjustmentHandler(deps.ApplyAdjustment, deps.History, deps.HistoryReport)
	inv.Post("/adjustments", canAdjust, adjustmentHandler.Apply)
	inv.Get("/history", anyRole, adjustmentHandler.History)
	inv.Get("/history/report", adminOnly, adjustmentHandler.HistoryReport)

	// Lecturas de stock y administración de umbrales
	stockHandler := NewStockHandler(deps.Aggregate, deps.StockAdmin, deps.VerifyLedger)
	inv.Get("/products/:id/aggregate", anyRole, stockHandler.ProductAggregate)
	inv.Get("/low-stock", anyRole, stockHandler.LowStock)
	inv.Get("/verify", adminOnly, stockHandler.VerifyLedger)
	inv.Put("/stock/reorder-level", adminOnly, stockHandler.SetReorderLevel)

	// Directorio de bodegas
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Get("/", anyRole, warehouseHandler.List)
	warehouses.Get("/:id", anyRole, warehouseHandler.GetByID)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)

	// Catálogo (registro pasivo para el libro de stock)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
}
