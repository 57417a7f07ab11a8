package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HectorCardoso53/medcontrol/internal/application/catalog"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/application/report"
	"github.com/HectorCardoso53/medcontrol/internal/application/stock"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	BatchUC         *stock.BatchUseCase
	StockUC         *stock.UseCase
	CreateVisit     *visit.CreateVisitUseCase
	DeleteVisit     *visit.DeleteVisitUseCase
	RecordDispensal *visit.RecordDispensalUseCase
	ReportUC        *report.UseCase
	Catalog         *catalog.Catalog
	Ledger          *ledger.Ledger
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Lotes (recebimento e exclusão)
	batches := api.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC, deps.StockUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Delete("/:id", batchHandler.Delete)
	api.Delete("/medications/:name/batches", batchHandler.DeleteMedication)

	// Atendimentos
	visits := api.Group("/visits")
	visitHandler := NewVisitHandler(deps.CreateVisit, deps.DeleteVisit, deps.Ledger)
	visits.Post("/", visitHandler.Create)
	visits.Get("/", visitHandler.List)
	visits.Delete("/:id", visitHandler.Delete)

	// Saídas avulsas
	dispensals := api.Group("/dispensals")
	dispensalHandler := NewDispensalHandler(deps.RecordDispensal, deps.Ledger)
	dispensals.Post("/", dispensalHandler.Record)
	dispensals.Get("/", dispensalHandler.List)

	// Posição de estoque
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.Overview)
	stockGroup.Get("/summary", stockHandler.Summary)
	stockGroup.Get("/fifo", stockHandler.SuggestFIFO)

	// Relatórios
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/pdf", reportHandler.ExportPDF)

	// Catálogo de apoio aos formulários
	catGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.Catalog)
	catGroup.Get("/medications", catalogHandler.Medications)
	catGroup.Get("/neighborhoods", catalogHandler.Neighborhoods)
}
