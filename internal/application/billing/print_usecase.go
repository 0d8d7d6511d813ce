package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
	"github.com/jhoicas/invoice-system/internal/infrastructure/printview"
	"github.com/jhoicas/invoice-system/pkg/logger"
)

// PrintUseCase genera la vista imprimible (HTML) de una factura persistida.
type PrintUseCase struct {
	invoices repository.InvoiceRepository
	renderer PrintRenderer
	audit    repository.ExportLogRepository
	settings ExportSettings
	log      *logger.Logger
}

// NewPrintUseCase construye el caso de uso.
func NewPrintUseCase(
	invoices repository.InvoiceRepository,
	renderer PrintRenderer,
	audit repository.ExportLogRepository,
	settings ExportSettings,
	log *logger.Logger,
) *PrintUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PrintUseCase{
		invoices: invoices,
		renderer: renderer,
		audit:    audit,
		settings: settings,
		log:      log.Component("print"),
	}
}

// Print devuelve el HTML de impresión. Con autoPrint la página abre el diálogo
// de impresión y restaura el título pasado TitleRestore.
func (uc *PrintUseCase) Print(ctx context.Context, invoiceID int64, autoPrint bool) ([]byte, error) {
	if invoiceID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	id := uuid.New().String()

	detail, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("print: obtener factura: %w", err)
	}
	html, err := uc.render(ctx, detail, autoPrint)
	recordExport(ctx, uc.audit, uc.log, exportLogFor(id, entity.ExportModePrint, invoiceID, detail, "", err))
	if err != nil {
		return nil, err
	}
	return html, nil
}

func (uc *PrintUseCase) render(ctx context.Context, d *entity.InvoiceDetail, autoPrint bool) ([]byte, error) {
	model, err := document.Build(d, uc.settings.Company)
	if err != nil {
		return nil, err
	}
	return uc.renderer.Render(ctx, model, printview.Options{
		AutoPrint:    autoPrint,
		TitleRestore: uc.settings.TitleRestore,
	})
}
