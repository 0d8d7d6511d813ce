package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-system/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	InvoiceUC  *billing.InvoiceUseCase
	DraftUC    *billing.DraftUseCase
	PDFUC      *billing.PDFUseCase
	PrintUC    *billing.PrintUseCase
	ReportUC   *billing.ReportUseCase
	CustomerUC *billing.CustomerUseCase
	ItemUC     *billing.ItemUseCase
	// BackendHealth comprueba la API del backend; nil omite la comprobación.
	BackendHealth func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		backend := "ok"
		if deps.BackendHealth != nil {
			if err := deps.BackendHealth(c.UserContext()); err != nil {
				backend = "unavailable"
			}
		}
		status := fiber.StatusOK
		if backend != "ok" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{"status": backend, "service": deps.AppName, "backend": backend})
	})

	api := app.Group("/api/v1")

	// Invoices + borradores
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DraftUC)
	exportHandler := NewExportHandler(deps.PDFUC, deps.PrintUC, deps.ReportUC)
	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Get("/:id/draft", invoiceHandler.EditDraft)
	invoices.Get("/:id/pdf", exportHandler.PDF)
	invoices.Get("/:id/print", exportHandler.Print)
	invoices.Get("/:id/exports", exportHandler.History)
	api.Post("/drafts/totals", invoiceHandler.Totals)

	// Exportaciones y reportes
	api.Get("/exports/status", exportHandler.Status)
	api.Get("/reports/invoices.pdf", exportHandler.InvoiceReport)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CustomerUC, deps.ItemUC)
	customers := api.Group("/customers")
	customers.Get("/", catalogHandler.ListCustomers)
	customers.Post("/", catalogHandler.CreateCustomer)
	items := api.Group("/items")
	items.Get("/", catalogHandler.SearchItems)
	items.Post("/", catalogHandler.CreateItem)
}
