package repository

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
)

// InvoiceRepository define el puerto hacia el backend que persiste las facturas.
// Las facturas nunca se guardan localmente.
type InvoiceRepository interface {
	List(ctx context.Context, filter entity.InvoiceFilter) (*entity.InvoicePage, error)
	// GetByID devuelve domain.ErrNotFound si el backend no conoce la factura.
	GetByID(ctx context.Context, id int64) (*entity.InvoiceDetail, error)
	// Create y Update no devuelven la factura: el backend solo confirma la operación.
	Create(ctx context.Context, sub invoice.Submission) error
	Update(ctx context.Context, id int64, sub invoice.Submission) error
}
