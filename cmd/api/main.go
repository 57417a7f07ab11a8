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

	"github.com/HectorCardoso53/medcontrol/internal/application/catalog"
	"github.com/HectorCardoso53/medcontrol/internal/application/ledger"
	"github.com/HectorCardoso53/medcontrol/internal/application/report"
	"github.com/HectorCardoso53/medcontrol/internal/application/stock"
	"github.com/HectorCardoso53/medcontrol/internal/application/visit"
	"github.com/HectorCardoso53/medcontrol/internal/domain/inventory"
	infrapdf "github.com/HectorCardoso53/medcontrol/internal/infrastructure/pdf"
	"github.com/HectorCardoso53/medcontrol/internal/infrastructure/postgres"
	httpRouter "github.com/HectorCardoso53/medcontrol/internal/interfaces/http"
	"github.com/HectorCardoso53/medcontrol/pkg/config"
	"github.com/HectorCardoso53/medcontrol/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	batchRepo := postgres.NewBatchRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	dispensalRepo := postgres.NewDispensalRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Espelho em memória do razão: toda leitura de saldo sai daqui,
	// o banco é a fonte durável.
	mirror := ledger.New(batchRepo, visitRepo, dispensalRepo)
	if err := mirror.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("carregar razão em memória")
	}

	thresholds := inventory.Thresholds{
		LowStock:          cfg.Stock.LowThreshold,
		ExpiryWarningDays: cfg.Stock.ExpiryWarningDays,
	}

	batchUC := stock.NewBatchUseCase(txRunner, batchRepo, mirror)
	stockUC := stock.NewUseCase(mirror, thresholds)
	createVisitUC := visit.NewCreateVisitUseCase(txRunner, mirror)
	deleteVisitUC := visit.NewDeleteVisitUseCase(txRunner, mirror)
	recordDispensalUC := visit.NewRecordDispensalUseCase(dispensalRepo, mirror)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewUseCase(mirror, pdfGenerator)
	cat := catalog.New(mirror)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MedControl API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BatchUC:         batchUC,
		StockUC:         stockUC,
		CreateVisit:     createVisitUC,
		DeleteVisit:     deleteVisitUC,
		RecordDispensal: recordDispensalUC,
		ReportUC:        reportUC,
		Catalog:         cat,
		Ledger:          mirror,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
