package pdf

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/domain/document"
)

// InvoiceRenderer compone Layout y GofpdfRenderer para generar el PDF directo.
type InvoiceRenderer struct {
	out *GofpdfRenderer
}

// NewInvoiceRenderer construye el renderer; creator se guarda en los metadatos.
func NewInvoiceRenderer(creator string) *InvoiceRenderer {
	return &InvoiceRenderer{out: NewGofpdfRenderer(creator)}
}

// RenderInvoice calcula el layout del modelo y lo serializa a PDF.
func (r *InvoiceRenderer) RenderInvoice(ctx context.Context, m *document.Model, opts Options) ([]byte, error) {
	prog, err := Layout(m, opts)
	if err != nil {
		return nil, err
	}
	return r.out.Render(ctx, prog)
}
