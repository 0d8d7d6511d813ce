package backend

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
)

// ── Formatos de la API del backend ────────────────────────────────────────────

type customerWire struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type itemWire struct {
	ID       int64            `json:"id,omitempty"`
	Name     string           `json:"name"`
	Type     string           `json:"type"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

type invoiceSummaryWire struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	Subject       string          `json:"subject"`
	TotalItems    int             `json:"total_items"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
}

type paginationWire struct {
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	NextPage    *int `json:"next_page,omitempty"`
	PrevPage    *int `json:"prev_page,omitempty"`
}

type invoiceListWire struct {
	Invoices   []invoiceSummaryWire `json:"invoices"`
	Pagination *paginationWire      `json:"pagination,omitempty"`
}

type detailItemWire struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Type       string          `json:"type"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  string          `json:"created_at"`
}

type invoiceDetailWire struct {
	ID            int64            `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	IssueDate     time.Time        `json:"issue_date"`
	DueDate       time.Time        `json:"due_date"`
	Subject       string           `json:"subject"`
	Customer      *customerWire    `json:"customer"`
	Items         []detailItemWire `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type submissionItemWire struct {
	ItemID   int64       `json:"item_id"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
}

type submissionWire struct {
	IssueDate  string               `json:"issue_date"`
	DueDate    string               `json:"due_date"`
	Subject    string               `json:"subject"`
	CustomerID int64                `json:"customer_id"`
	Items      []submissionItemWire `json:"items"`
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func (w customerWire) toEntity() entity.Customer {
	return entity.Customer{ID: w.ID, Name: w.Name, Email: w.Email, Phone: w.Phone, Address: w.Address}
}

func customerToWire(c *entity.Customer) customerWire {
	return customerWire{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}

func (w itemWire) toEntity() entity.CatalogItem {
	it := entity.CatalogItem{ID: w.ID, Name: w.Name, Type: w.Type}
	if w.Price != nil {
		it.Price = *w.Price
	}
	return it
}

func (w invoiceListWire) toEntity(filter entity.InvoiceFilter) *entity.InvoicePage {
	page := &entity.InvoicePage{
		Invoices: lo.Map(w.Invoices, func(s invoiceSummaryWire, _ int) entity.InvoiceSummary {
			return entity.InvoiceSummary{
				ID:            s.ID,
				InvoiceNumber: s.InvoiceNumber,
				IssueDate:     s.IssueDate,
				DueDate:       s.DueDate,
				Subject:       s.Subject,
				TotalItems:    s.TotalItems,
				CustomerName:  s.CustomerName,
				TotalAmount:   s.TotalAmount,
				Status:        entity.InvoiceStatus(s.Status),
			}
		}),
	}
	if w.Pagination != nil {
		page.Pagination = entity.Pagination{
			TotalItems:  w.Pagination.TotalItems,
			TotalPages:  w.Pagination.TotalPages,
			CurrentPage: w.Pagination.CurrentPage,
			NextPage:    w.Pagination.NextPage,
			PrevPage:    w.Pagination.PrevPage,
		}
	} else {
		// Backend sin paginación: una sola página con lo recibido.
		page.Pagination = entity.Pagination{
			TotalItems:  len(w.Invoices),
			TotalPages:  1,
			CurrentPage: max(filter.Page, 1),
		}
	}
	return page
}

func (w invoiceDetailWire) toEntity() *entity.InvoiceDetail {
	d := &entity.InvoiceDetail{
		ID:            w.ID,
		InvoiceNumber: w.InvoiceNumber,
		IssueDate:     w.IssueDate,
		DueDate:       w.DueDate,
		Subject:       w.Subject,
		Subtotal:      w.Subtotal,
		Tax:           w.Tax,
		TotalAmount:   w.TotalAmount,
		Status:        entity.InvoiceStatus(w.Status),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
		Items: lo.Map(w.Items, func(it detailItemWire, _ int) entity.DetailItem {
			created, _ := time.Parse(time.RFC3339, it.CreatedAt)
			return entity.DetailItem{
				ID:         it.ID,
				ItemID:     it.ItemID,
				ItemName:   it.ItemName,
				Type:       it.Type,
				Quantity:   it.Quantity,
				Price:      it.Price,
				TotalPrice: it.TotalPrice,
				CreatedAt:  created,
			}
		}),
	}
	// Un cliente vacío ({"id":0,"name":""...}) se trata como ausente.
	if w.Customer != nil && (w.Customer.ID != 0 || w.Customer.Name != "") {
		c := w.Customer.toEntity()
		d.Customer = &c
	}
	return d
}

func submissionToWire(s invoice.Submission) submissionWire {
	return submissionWire{
		IssueDate:  s.IssueDate,
		DueDate:    s.DueDate,
		Subject:    s.Subject,
		CustomerID: s.CustomerID,
		Items: lo.Map(s.Items, func(it invoice.SubmissionItem, _ int) submissionItemWire {
			return submissionItemWire{ItemID: it.ItemID, Quantity: it.Quantity, Price: json.Number(it.Price.String())}
		}),
	}
}
