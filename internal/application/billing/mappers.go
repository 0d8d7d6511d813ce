package billing

import (
	"time"

	"github.com/samber/lo"

	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
)

// dateOnly formato de fechas en las respuestas (YYYY-MM-DD).
const dateOnly = "2006-01-02"

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateOnly)
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func toItemResponse(it entity.CatalogItem) dto.ItemResponse {
	return dto.ItemResponse{ID: it.ID, Name: it.Name, Type: it.Type, Price: it.Price}
}

func toInvoiceListResponse(p *entity.InvoicePage) *dto.InvoiceListResponse {
	return &dto.InvoiceListResponse{
		Invoices: lo.Map(p.Invoices, func(s entity.InvoiceSummary, _ int) dto.InvoiceSummaryResponse {
			return dto.InvoiceSummaryResponse{
				ID:            s.ID,
				InvoiceNumber: s.InvoiceNumber,
				IssueDate:     formatDay(s.IssueDate),
				DueDate:       formatDay(s.DueDate),
				Subject:       s.Subject,
				TotalItems:    s.TotalItems,
				CustomerName:  s.CustomerName,
				TotalAmount:   s.TotalAmount,
				Status:        string(s.Status),
			}
		}),
		Pagination: dto.PageResponse{
			TotalItems:  p.Pagination.TotalItems,
			TotalPages:  p.Pagination.TotalPages,
			CurrentPage: p.Pagination.CurrentPage,
			NextPage:    p.Pagination.NextPage,
			PrevPage:    p.Pagination.PrevPage,
		},
	}
}

func toInvoiceDetailResponse(d *entity.InvoiceDetail) *dto.InvoiceDetailResponse {
	out := &dto.InvoiceDetailResponse{
		ID:            d.ID,
		InvoiceNumber: d.InvoiceNumber,
		IssueDate:     formatDay(d.IssueDate),
		DueDate:       formatDay(d.DueDate),
		Subject:       d.Subject,
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		TotalAmount:   d.TotalAmount,
		Status:        string(d.Status),
		Items: lo.Map(d.Items, func(it entity.DetailItem, _ int) dto.DetailItemResponse {
			return dto.DetailItemResponse{
				ID:         it.ID,
				ItemID:     it.ItemID,
				ItemName:   it.ItemName,
				Type:       it.Type,
				Quantity:   it.Quantity,
				Price:      it.Price,
				TotalPrice: it.TotalPrice,
			}
		}),
	}
	if d.Customer != nil {
		c := toCustomerResponse(*d.Customer)
		out.Customer = &c
	}
	return out
}

func toDraftResponse(d *invoice.Draft) *dto.DraftResponse {
	t := d.Totals()
	problems := d.Problems()
	if problems == nil {
		problems = []string{}
	}
	return &dto.DraftResponse{
		CustomerID: d.CustomerID,
		IssueDate:  formatDay(d.IssueDate),
		DueDate:    formatDay(d.DueDate),
		Subject:    d.Subject,
		Items: lo.Map(d.Items, func(li invoice.LineItem, _ int) dto.DraftLineResponse {
			return dto.DraftLineResponse{
				ItemID:   li.CatalogItemID,
				Name:     li.Name,
				Type:     li.Type,
				Quantity: li.Quantity,
				Price:    li.UnitPrice,
				Amount:   li.Amount(),
			}
		}),
		Subtotal:    t.Subtotal,
		TaxRate:     t.TaxRate,
		Tax:         t.TaxAmount,
		Total:       t.GrandTotal,
		Submittable: len(problems) == 0,
		Problems:    problems,
	}
}
