package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre /invoices.
type InvoiceRepo struct {
	c *Client
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(c *Client) *InvoiceRepo {
	return &InvoiceRepo{c: c}
}

// List GET /invoices con filtros y paginación.
func (r *InvoiceRepo) List(ctx context.Context, f entity.InvoiceFilter) (*entity.InvoicePage, error) {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("invoice_id", f.InvoiceID)
	set("issue_date", f.IssueDate)
	set("subject", f.Subject)
	set("customer_name", f.CustomerName)
	set("due_date", f.DueDate)
	set("status", string(f.Status))
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	var out invoiceListWire
	if err := r.c.do(ctx, http.MethodGet, "/invoices", q, nil, &out); err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	return out.toEntity(f), nil
}

// GetByID GET /invoices/:id
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.InvoiceDetail, error) {
	var out invoiceDetailWire
	if err := r.c.do(ctx, http.MethodGet, "/invoices/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, fmt.Errorf("obtener factura %d: %w", id, err)
	}
	return out.toEntity(), nil
}

// Create POST /invoices
func (r *InvoiceRepo) Create(ctx context.Context, sub invoice.Submission) error {
	if err := r.c.do(ctx, http.MethodPost, "/invoices", nil, submissionToWire(sub), nil); err != nil {
		return fmt.Errorf("crear factura: %w", err)
	}
	return nil
}

// Update PUT /invoices/:id
func (r *InvoiceRepo) Update(ctx context.Context, id int64, sub invoice.Submission) error {
	path := "/invoices/" + strconv.FormatInt(id, 10)
	if err := r.c.do(ctx, http.MethodPut, path, nil, submissionToWire(sub), nil); err != nil {
		return fmt.Errorf("actualizar factura %d: %w", id, err)
	}
	return nil
}
