package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
)

// Valid indica si el estado es uno de los reconocidos por el backend.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusUnpaid
}

// InvoiceSummary es la fila de factura que devuelve el listado paginado.
type InvoiceSummary struct {
	ID            int64
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Subject       string
	TotalItems    int
	CustomerName  string
	TotalAmount   decimal.Decimal
	Status        InvoiceStatus
}

// InvoiceFilter filtros del listado de facturas (todos opcionales salvo Limit).
type InvoiceFilter struct {
	InvoiceID    string
	IssueDate    string
	Subject      string
	CustomerName string
	DueDate      string
	Status       InvoiceStatus
	Page         int
	Limit        int
}

// Pagination metadatos de página devueltos por el backend.
type Pagination struct {
	TotalItems  int
	TotalPages  int
	CurrentPage int
	NextPage    *int
	PrevPage    *int
}

// InvoicePage agrupa una página de facturas con su paginación.
type InvoicePage struct {
	Invoices   []InvoiceSummary
	Pagination Pagination
}
