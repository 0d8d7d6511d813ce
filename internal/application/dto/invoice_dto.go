package dto

import "github.com/shopspring/decimal"

// InvoiceListQuery filtros de GET /api/v1/invoices.
type InvoiceListQuery struct {
	InvoiceID    string `query:"invoice_id" validate:"max=64"`
	IssueDate    string `query:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	Subject      string `query:"subject" validate:"max=255"`
	CustomerName string `query:"customer_name" validate:"max=255"`
	DueDate      string `query:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string `query:"status" validate:"omitempty,oneof=paid unpaid"`
	Page         int    `query:"page" validate:"min=0"`
	Limit        int    `query:"limit" validate:"min=0,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (q *InvoiceListQuery) DefaultPage() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
}

// InvoiceSummaryResponse fila del listado.
type InvoiceSummaryResponse struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	Subject       string          `json:"subject"`
	TotalItems    int             `json:"total_items"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Invoices   []InvoiceSummaryResponse `json:"invoices"`
	Pagination PageResponse             `json:"pagination"`
}

// InvoiceDetailResponse factura con detalle para GET /api/v1/invoices/:id.
type InvoiceDetailResponse struct {
	ID            int64                `json:"id"`
	InvoiceNumber string               `json:"invoice_number"`
	IssueDate     string               `json:"issue_date"`
	DueDate       string               `json:"due_date"`
	Subject       string               `json:"subject"`
	Customer      *CustomerResponse    `json:"customer"`
	Items         []DetailItemResponse `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	Status        string               `json:"status"`
}

// DetailItemResponse línea de detalle en la respuesta.
type DetailItemResponse struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Type       string          `json:"type"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
