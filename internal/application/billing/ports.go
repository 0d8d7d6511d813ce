package billing

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-system/internal/infrastructure/printview"
)

// InvoicePDFRenderer dibuja el PDF directo de una factura a partir del modelo
// de presentación.
type InvoicePDFRenderer interface {
	RenderInvoice(ctx context.Context, m *document.Model, opts pdf.Options) ([]byte, error)
}

// PrintRenderer produce la vista HTML imprimible.
type PrintRenderer interface {
	Render(ctx context.Context, m *document.Model, opts printview.Options) ([]byte, error)
}

// InvoiceListReporter genera el reporte PDF de un listado de facturas.
type InvoiceListReporter interface {
	GenerateInvoiceListPDF(ctx context.Context, in pdf.ReportInput) ([]byte, error)
}
