package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/gestfinance-api/internal/application/analytics"
	"github.com/jhoicas/gestfinance-api/internal/application/backup"
	"github.com/jhoicas/gestfinance-api/internal/application/dto"
	"github.com/jhoicas/gestfinance-api/internal/application/inventory"
	"github.com/jhoicas/gestfinance-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName   string
	StoreDriver   string
	TransactionUC *usecase.TransactionUseCase
	ProductUC     *usecase.ProductUseCase
	RegistryUC    *usecase.RegistryUseCase
	OutboundUC    *inventory.OutboundUseCase
	Backup        *backup.Service
	DashboardUC   *appanalytics.DashboardUseCase
	ReportUC      *appanalytics.ReportUseCase
	ShowcaseUC    *appanalytics.ShowcaseUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName, Store: deps.StoreDriver})
	})

	api := app.Group("/api")

	// Transactions
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Post("/recompute", productHandler.Recompute)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Outbound movements
	movements := api.Group("/outbound-movements")
	inventoryHandler := NewInventoryHandler(deps.OutboundUC)
	movements.Post("/", inventoryHandler.RegisterOutbound)
	movements.Get("/", inventoryHandler.List)
	movements.Get("/:id", inventoryHandler.GetByID)
	movements.Put("/:id", inventoryHandler.Update)
	movements.Delete("/:id", inventoryHandler.Delete)

	// Registry
	registry := api.Group("/registry")
	registryHandler := NewRegistryHandler(deps.RegistryUC)
	registry.Get("/", registryHandler.Get)
	registry.Put("/:list", registryHandler.ReplaceList)
	registry.Post("/:list", registryHandler.AddValue)
	registry.Delete("/:list/:value", registryHandler.RemoveValue)

	// Backup
	backupHandler := NewBackupHandler(deps.Backup)
	api.Get("/backup", backupHandler.Export)
	api.Post("/backup", backupHandler.Import)

	// Dashboard, reportes y vitrine
	api.Get("/dashboard/summary", NewDashboardHandler(deps.DashboardUC).GetSummary)
	reportHandler := NewReportHandler(deps.ReportUC, deps.ShowcaseUC)
	api.Get("/reports/cash-flow", reportHandler.CashFlow)
	api.Get("/reports/cash-flow/pdf", reportHandler.CashFlowPDF)
	api.Get("/showcase", reportHandler.Showcase)
}
