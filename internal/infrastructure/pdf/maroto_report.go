package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	reportGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	reportLine   = &props.Color{Red: 200, Green: 200, Blue: 200}
	reportPaid   = &props.Color{Red: 76, Green: 175, Blue: 80}
	reportUnpaid = &props.Color{Red: 244, Green: 67, Blue: 54}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportInput datos del reporte de listado de facturas.
type ReportInput struct {
	Company     document.Company
	FilterLabel string // descripción legible de los filtros aplicados
	Page        *entity.InvoicePage
	GeneratedAt time.Time
}

// MarotoReportGenerator genera el reporte PDF del listado de facturas con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInvoiceListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInvoiceListPDF(_ context.Context, in ReportInput) ([]byte, error) {
	if in.Page == nil {
		return nil, fmt.Errorf("%w: página de facturas nula", domain.ErrInvalidInput)
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice list", true).
		WithAuthor(in.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: reportLine, Thickness: 0.5}))
	m.AddRows(reportTableHeaderRow())
	m.AddRows(reportRows(in.Page.Invoices)...)
	m.AddRows(line.NewRow(1, props.Line{Color: reportLine, Thickness: 0.3}))
	m.AddRows(reportTotalsRow(in.Page))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: reporte: %v", domain.ErrRender, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// reportHeaderRow: empresa (izq) y fecha de generación + filtros (der).
func reportHeaderRow(in ReportInput) core.Row {
	p := in.Page.Pagination
	return row.New(18).Add(
		col.New(7).Add(
			text.New(in.Company.Name, props.Text{Style: fontstyle.Bold, Size: 13, Top: 1}),
			text.New("Invoices", props.Text{Size: 9, Top: 9, Color: reportGray}),
		),
		col.New(5).Add(
			text.New("Generated "+in.GeneratedAt.Format(document.DateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: reportGray,
			}),
			text.New(nonEmpty(in.FilterLabel, "All invoices"), props.Text{
				Size: 8, Align: align.Right, Top: 6,
			}),
			text.New(fmt.Sprintf("Page %d of %d", p.CurrentPage, max(p.TotalPages, 1)), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: reportGray,
			}),
		),
	)
}

// reportTableHeaderRow: cabecera de la tabla.
func reportTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Invoice", 2, align.Left),
		h("Customer", 3, align.Left),
		h("Subject", 3, align.Left),
		h("Due", 2, align.Center),
		h("Amount", 1, align.Right),
		h("Status", 1, align.Center),
	)
}

// reportRows: una fila por factura.
func reportRows(invoices []entity.InvoiceSummary) []core.Row {
	result := make([]core.Row, 0, len(invoices))
	for _, inv := range invoices {
		statusColor := reportUnpaid
		if inv.Status == entity.InvoiceStatusPaid {
			statusColor = reportPaid
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(inv.InvoiceNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(inv.CustomerName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(TruncateDescription(inv.Subject), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(inv.DueDate.Format(document.DateLayout), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(1).Add(text.New(money.Format(inv.TotalAmount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(1).Add(text.New(string(inv.Status), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1, Color: statusColor,
			})),
		))
	}
	return result
}

// reportTotalsRow: suma de la página y total de facturas del filtro.
func reportTotalsRow(page *entity.InvoicePage) core.Row {
	sum := decimal.Zero
	for _, inv := range page.Invoices {
		sum = sum.Add(inv.TotalAmount)
	}
	return row.New(12).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("%d of %d invoices", len(page.Invoices), page.Pagination.TotalItems),
			props.Text{Size: 8, Top: 3, Color: reportGray},
		)),
		col.New(6).Add(text.New("Page total: "+money.Format(sum), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 3,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
