package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-system/pkg/logger"
)

// auditTimeout tiempo máximo para registrar la auditoría de una exportación.
const auditTimeout = 3 * time.Second

// ExportSettings parámetros comunes de exportación (PDF e impresión).
type ExportSettings struct {
	Company      document.Company
	Defaults     pdf.Options   // opciones PDF cuando quien llama no indica nada
	TitleRestore time.Duration // vista de impresión
}

// ExportResult PDF generado.
type ExportResult struct {
	ID       string
	Filename string
	Content  []byte
}

// PDFUseCase genera el PDF directo de una factura persistida.
// Solo se atiende una exportación a la vez; el estado queda en el ExportTracker.
type PDFUseCase struct {
	invoices repository.InvoiceRepository
	renderer InvoicePDFRenderer
	audit    repository.ExportLogRepository
	tracker  *ExportTracker
	limiter  *rate.Limiter
	settings ExportSettings
	log      *logger.Logger
	now      func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
// limiter puede ser nil (sin límite).
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	renderer InvoicePDFRenderer,
	audit repository.ExportLogRepository,
	tracker *ExportTracker,
	limiter *rate.Limiter,
	settings ExportSettings,
	log *logger.Logger,
) *PDFUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PDFUseCase{
		invoices: invoices,
		renderer: renderer,
		audit:    audit,
		tracker:  tracker,
		limiter:  limiter,
		settings: settings,
		log:      log.Component("pdf_export"),
		now:      time.Now,
	}
}

// Export recupera la factura, valida que tenga los datos mínimos y genera el PDF.
//
// Retorna:
//   - domain.ErrInvalidInput        si las opciones no son válidas (sin tocar el tracker).
//   - domain.ErrExportInProgress    si ya hay una exportación en curso.
//   - domain.ErrNotFound            si la factura no existe.
//   - domain.ErrExportPrecondition  si falta número, cliente o líneas; no se genera archivo.
//   - domain.ErrRender              si falla el renderizado.
func (uc *PDFUseCase) Export(ctx context.Context, invoiceID int64, opts pdf.Options) (*ExportResult, error) {
	if invoiceID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	opts = uc.mergeOptions(opts).WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	id, ok := uc.tracker.Begin()
	if !ok {
		return nil, domain.ErrExportInProgress
	}

	res, detail, err := uc.export(ctx, invoiceID, opts)
	if err != nil {
		uc.tracker.Fail(id, NormalizeExportError(err))
		uc.record(ctx, id, invoiceID, detail, "", err)
		uc.log.Warn().Err(err).Int64("invoice_id", invoiceID).Msg("exportación PDF fallida")
		return nil, err
	}
	res.ID = id

	uc.tracker.Succeed(id, fmt.Sprintf(`PDF "%s" downloaded successfully`, res.Filename))
	uc.record(ctx, id, invoiceID, detail, res.Filename, nil)
	uc.log.Info().
		Int64("invoice_id", invoiceID).
		Str("filename", res.Filename).
		Str("format", opts.Format).
		Str("orientation", opts.Orientation).
		Float64("quality", opts.Quality).
		Int("bytes", len(res.Content)).
		Msg("PDF generado")
	return res, nil
}

func (uc *PDFUseCase) export(ctx context.Context, invoiceID int64, opts pdf.Options) (*ExportResult, *entity.InvoiceDetail, error) {
	// ── 1. Cargar factura ─────────────────────────────────────────────────────
	detail, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("pdf: obtener factura: %w", err)
	}

	// ── 2. Validar y armar el modelo (sin recalcular totales) ─────────────────
	model, err := document.Build(detail, uc.settings.Company)
	if err != nil {
		return nil, detail, err
	}

	// ── 3. Limitar la tasa de renders ─────────────────────────────────────────
	if uc.limiter != nil {
		if err := uc.limiter.Wait(ctx); err != nil {
			return nil, detail, fmt.Errorf("pdf: esperando turno de render: %w", err)
		}
	}

	// ── 4. Renderizar ─────────────────────────────────────────────────────────
	content, err := uc.renderer.RenderInvoice(ctx, model, opts)
	if err != nil {
		if !errors.Is(err, domain.ErrRender) {
			err = fmt.Errorf("%w: %v", domain.ErrRender, err)
		}
		return nil, detail, err
	}

	filename := pdf.SanitizeFilename(opts.Filename)
	if filename == "" {
		filename = pdf.DefaultFilename(model.InvoiceNumber, uc.now())
	}
	return &ExportResult{Filename: filename, Content: content}, detail, nil
}

// Status estado de la exportación actual o la última terminada.
func (uc *PDFUseCase) Status() dto.ExportStatusResponse {
	s := uc.tracker.State()
	return dto.ExportStatusResponse{ID: s.ID, Pending: s.Pending, Error: s.Error, Success: s.Success}
}

// History últimas exportaciones registradas de una factura.
func (uc *PDFUseCase) History(ctx context.Context, invoiceID int64, limit int) ([]dto.ExportLogResponse, error) {
	if invoiceID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	logs, err := uc.audit.ListByInvoice(ctx, invoiceID, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(logs, func(l entity.ExportLog, _ int) dto.ExportLogResponse {
		return dto.ExportLogResponse{
			ID:            l.ID,
			InvoiceNumber: l.InvoiceNumber,
			Mode:          l.Mode,
			Filename:      l.Filename,
			Status:        l.Status,
			Error:         l.Error,
			TotalAmount:   l.TotalAmount,
			CreatedAt:     l.CreatedAt.UTC().Format(time.RFC3339),
		}
	}), nil
}

// mergeOptions completa con la configuración del servidor lo que no indicó quien llama.
func (uc *PDFUseCase) mergeOptions(o pdf.Options) pdf.Options {
	def := uc.settings.Defaults
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Orientation == "" {
		o.Orientation = def.Orientation
	}
	if o.Quality == 0 {
		o.Quality = def.Quality
	}
	// Cada lado en 0 toma el margen por defecto del servidor.
	o.Margins.Top = orDefault(o.Margins.Top, def.Margins.Top)
	o.Margins.Right = orDefault(o.Margins.Right, def.Margins.Right)
	o.Margins.Bottom = orDefault(o.Margins.Bottom, def.Margins.Bottom)
	o.Margins.Left = orDefault(o.Margins.Left, def.Margins.Left)
	return o
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// record guarda la auditoría sin bloquear ni fallar la exportación.
func (uc *PDFUseCase) record(ctx context.Context, id string, invoiceID int64, d *entity.InvoiceDetail, filename string, cause error) {
	recordExport(ctx, uc.audit, uc.log, exportLogFor(id, entity.ExportModePDF, invoiceID, d, filename, cause))
}

func exportLogFor(id, mode string, invoiceID int64, d *entity.InvoiceDetail, filename string, cause error) *entity.ExportLog {
	l := &entity.ExportLog{
		ID:        id,
		InvoiceID: invoiceID,
		Mode:      mode,
		Filename:  filename,
		Status:    entity.ExportStatusSucceeded,
	}
	if d != nil {
		l.InvoiceNumber = d.InvoiceNumber
		l.TotalAmount = d.TotalAmount
	}
	if cause != nil {
		l.Status = entity.ExportStatusFailed
		l.Error = NormalizeExportError(cause)
	}
	return l
}

func recordExport(ctx context.Context, audit repository.ExportLogRepository, log *logger.Logger, l *entity.ExportLog) {
	if audit == nil {
		return
	}
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if err := audit.Create(actx, l); err != nil {
		log.Error().Err(err).Str("export_id", l.ID).Msg("no se pudo registrar la auditoría")
	}
}
