package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
)

// HeaderExportID cabecera con el ID de la exportación generada.
const HeaderExportID = "X-Export-ID"

// defaultHistoryLimit registros de auditoría devueltos si no se indica limit.
const defaultHistoryLimit = 20

// ExportHandler PDF directo, vista de impresión y reportes.
type ExportHandler struct {
	pdf    *billing.PDFUseCase
	print  *billing.PrintUseCase
	report *billing.ReportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(pdfUC *billing.PDFUseCase, printUC *billing.PrintUseCase, reportUC *billing.ReportUseCase) *ExportHandler {
	return &ExportHandler{pdf: pdfUC, print: printUC, report: reportUC}
}

// PDF descarga el PDF directo de la factura.
// GET /api/v1/invoices/:id/pdf?filename=&format=&orientation=&quality=&margin=
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "invalid invoice id")
	}
	var q dto.PDFExportQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	opts := pdf.Options{
		Filename:    q.Filename,
		Format:      q.Format,
		Orientation: q.Orientation,
		Quality:     q.Quality,
	}
	opts.Margins = pdf.Margins{
		Top:    firstPositive(q.MarginTop, q.Margin),
		Right:  firstPositive(q.MarginRight, q.Margin),
		Bottom: firstPositive(q.MarginBottom, q.Margin),
		Left:   firstPositive(q.MarginLeft, q.Margin),
	}

	res, err := h.pdf.Export(c.UserContext(), id, opts)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(res.Filename)
	c.Set(HeaderExportID, res.ID)
	return c.Send(res.Content)
}

// Print devuelve la vista HTML imprimible.
// GET /api/v1/invoices/:id/print?autoprint=true
func (h *ExportHandler) Print(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "invalid invoice id")
	}
	var q dto.PrintQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	html, err := h.print.Print(c.UserContext(), id, q.AutoPrint)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}

// Status GET /api/v1/exports/status
func (h *ExportHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.pdf.Status())
}

// History GET /api/v1/invoices/:id/exports?limit=20
func (h *ExportHandler) History(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "invalid invoice id")
	}
	q := dto.ExportHistoryQuery{Limit: defaultHistoryLimit}
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	out, err := h.pdf.History(c.UserContext(), id, q.Limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// InvoiceReport reporte PDF del listado filtrado.
// GET /api/v1/reports/invoices.pdf?customer_name=&status=&page=&limit=
func (h *ExportHandler) InvoiceReport(c *fiber.Ctx) error {
	var q dto.InvoiceListQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	content, filename, err := h.report.InvoiceListPDF(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	return c.Send(content)
}

// firstPositive devuelve v si es mayor que 0; si no, fallback.
func firstPositive(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
