package billing

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

// InvoiceUseCase consulta de facturas persistidas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List lista facturas con filtros y paginación.
func (uc *InvoiceUseCase) List(ctx context.Context, q dto.InvoiceListQuery) (*dto.InvoiceListResponse, error) {
	page, err := uc.repo.List(ctx, FilterFromQuery(q))
	if err != nil {
		return nil, err
	}
	return toInvoiceListResponse(page), nil
}

// Get devuelve el detalle de una factura.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceDetailResponse(d), nil
}

// FilterFromQuery convierte los parámetros de consulta en filtro de dominio.
func FilterFromQuery(q dto.InvoiceListQuery) entity.InvoiceFilter {
	q.DefaultPage()
	return entity.InvoiceFilter{
		InvoiceID:    q.InvoiceID,
		IssueDate:    q.IssueDate,
		Subject:      q.Subject,
		CustomerName: q.CustomerName,
		DueDate:      q.DueDate,
		Status:       entity.InvoiceStatus(q.Status),
		Page:         q.Page,
		Limit:        q.Limit,
	}
}
