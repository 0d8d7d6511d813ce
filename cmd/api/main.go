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
	"golang.org/x/time/rate"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
	"github.com/jhoicas/invoice-system/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-system/internal/infrastructure/postgres"
	"github.com/jhoicas/invoice-system/internal/infrastructure/printview"
	httpRouter "github.com/jhoicas/invoice-system/internal/interfaces/http"
	"github.com/jhoicas/invoice-system/pkg/config"
	"github.com/jhoicas/invoice-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Auditoría de exportaciones: opcional, solo si hay base de datos configurada.
	var audit repository.ExportLogRepository = postgres.NopExportLog{}
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		audit = postgres.NewExportLogRepository(pool)
	} else {
		log.Warn().Msg("sin DATABASE_URL ni DB_HOST: la auditoría de exportaciones queda desactivada")
	}

	// Backend REST de facturas, clientes y artículos.
	client := backend.NewClient(cfg.Backend, log)
	invoiceRepo := backend.NewInvoiceRepository(client)
	customerRepo := backend.NewCachedCustomers(backend.NewCustomerRepository(client), cfg.Backend.CacheTTL)
	itemRepo := backend.NewCachedItems(backend.NewItemRepository(client), cfg.Backend.CacheTTL)

	settings := billing.ExportSettings{
		Company: document.Company{Name: cfg.Company.Name, AddressLines: cfg.Company.AddressLines},
		Defaults: infrapdf.Options{
			Format:      cfg.Export.Format,
			Orientation: cfg.Export.Orientation,
			Quality:     infrapdf.DefaultQuality,
			Margins:     infrapdf.UniformMargins(cfg.Export.MarginMM),
		}.WithDefaults(),
		TitleRestore: cfg.Export.TitleRestore,
	}
	if err := settings.Defaults.Validate(); err != nil {
		log.Fatal().Err(err).Msg("opciones PDF por defecto")
	}

	var limiter *rate.Limiter
	if cfg.Export.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Export.RatePerSec), max(cfg.Export.Burst, 1))
	}
	tracker := billing.NewExportTracker(cfg.Export.ErrorTTL, cfg.Export.SuccessTTL)
	defer tracker.Stop()

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	draftUC := billing.NewDraftUseCase(invoiceRepo)
	pdfUC := billing.NewPDFUseCase(
		invoiceRepo, infrapdf.NewInvoiceRenderer(cfg.App.Name), audit, tracker, limiter, settings, log,
	)
	printUC := billing.NewPrintUseCase(invoiceRepo, printview.NewRenderer(), audit, settings, log)
	reportUC := billing.NewReportUseCase(invoiceRepo, infrapdf.NewMarotoReportGenerator(), settings)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	itemUC := billing.NewItemUseCase(itemRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice System API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		InvoiceUC:     invoiceUC,
		DraftUC:       draftUC,
		PDFUC:         pdfUC,
		PrintUC:       printUC,
		ReportUC:      reportUC,
		CustomerUC:    customerUC,
		ItemUC:        itemUC,
		BackendHealth: client.Health,
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
