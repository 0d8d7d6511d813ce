package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

// DraftRejectedError el borrador no cumple los requisitos de envío. No se
// contactó al backend.
type DraftRejectedError struct {
	Problems []string
}

func (e *DraftRejectedError) Error() string {
	return domain.ErrDraftNotSubmittable.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *DraftRejectedError) Unwrap() error { return domain.ErrDraftNotSubmittable }

// DraftUseCase edición, vista previa y envío de borradores de factura.
type DraftUseCase struct {
	invoices repository.InvoiceRepository
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(invoices repository.InvoiceRepository) *DraftUseCase {
	return &DraftUseCase{invoices: invoices}
}

// Preview normaliza el borrador y devuelve líneas, totales y requisitos pendientes.
func (uc *DraftUseCase) Preview(in dto.DraftRequest) (*dto.DraftResponse, error) {
	draft, err := BuildDraft(in)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// Submit valida el borrador y, si cumple, da de alta la factura en el backend.
// Devuelve el borrador normalizado que se envió.
func (uc *DraftUseCase) Submit(ctx context.Context, in dto.DraftRequest) (*dto.DraftResponse, error) {
	draft, sub, err := uc.submission(in)
	if err != nil {
		return nil, err
	}
	if err := uc.invoices.Create(ctx, sub); err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// Update valida el borrador y reemplaza la factura id en el backend.
func (uc *DraftUseCase) Update(ctx context.Context, id int64, in dto.DraftRequest) (*dto.DraftResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	draft, sub, err := uc.submission(in)
	if err != nil {
		return nil, err
	}
	if err := uc.invoices.Update(ctx, id, sub); err != nil {
		return nil, err
	}
	return toDraftResponse(draft), nil
}

// EditDraft carga una factura persistida como borrador editable.
func (uc *DraftUseCase) EditDraft(ctx context.Context, id int64) (*dto.DraftResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	detail, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDraftResponse(invoice.DraftFromDetail(detail)), nil
}

func (uc *DraftUseCase) submission(in dto.DraftRequest) (*invoice.Draft, invoice.Submission, error) {
	draft, err := BuildDraft(in)
	if err != nil {
		return nil, invoice.Submission{}, err
	}
	if problems := draft.Problems(); len(problems) > 0 {
		return nil, invoice.Submission{}, &DraftRejectedError{Problems: problems}
	}
	sub, err := draft.ToSubmission()
	if err != nil {
		return nil, invoice.Submission{}, err
	}
	return draft, sub, nil
}

// BuildDraft arma un borrador a partir de la petición aplicando las mismas
// operaciones que el editor: alta de línea y coerción de cantidad y precio.
func BuildDraft(in dto.DraftRequest) (*invoice.Draft, error) {
	issue, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: issue_date: %v", domain.ErrInvalidInput, err)
	}
	due, err := parseDate(in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: due_date: %v", domain.ErrInvalidInput, err)
	}

	d := invoice.NewDraft()
	d.SetCustomer(in.CustomerID)
	d.SetIssueDate(issue)
	d.SetDueDate(due)
	d.SetSubject(in.Subject)
	for i, it := range in.Items {
		d.AddItem(entity.CatalogItem{ID: it.ItemID, Name: it.Name, Type: it.Type})
		if err := d.SetQuantity(i, string(it.Quantity)); err != nil {
			return nil, err
		}
		if err := d.SetUnitPrice(i, string(it.Price)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseDate acepta YYYY-MM-DD o RFC 3339. Vacío es fecha no seleccionada.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
