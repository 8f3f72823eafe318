package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/muebleria-stock/internal/application/inventory"
	"github.com/jhoicas/muebleria-stock/internal/application/usecase"
	infrapdf "github.com/jhoicas/muebleria-stock/internal/infrastructure/pdf"
	"github.com/jhoicas/muebleria-stock/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/muebleria-stock/internal/interfaces/http"
	"github.com/jhoicas/muebleria-stock/pkg/config"
	"github.com/jhoicas/muebleria-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRecordRepository(pool)
	adjRepo := postgres.NewAdjustmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyAdjustmentUC := inventory.NewApplyAdjustmentUseCase(txRunner, warehouseRepo, inventory.Config{
		EnforceReservedCeiling: cfg.Ledger.EnforceReservedCeiling,
	})
	historyUC := inventory.NewHistoryUseCase(adjRepo)
	aggregateUC := inventory.NewAggregateUseCase(stockRepo, warehouseRepo)
	stockAdminUC := inventory.NewStockAdminUseCase(stockRepo)
	verifyUC := inventory.NewVerifyLedgerUseCase(stockRepo, adjRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)

	// PDF: reporte descargable del historial de ajustes
	reportGenerator := infrapdf.NewHistoryReportGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mueblería Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ApplyAdjustment: applyAdjustmentUC,
		History:         historyUC,
		Aggregate:       aggregateUC,
		StockAdmin:      stockAdminUC,
		VerifyLedger:    verifyUC,
		HistoryReport:   reportGenerator,
		WarehouseUC:     warehouseUC,
		ProductUC:       productUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
