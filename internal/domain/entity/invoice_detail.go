package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceDetail es la factura confirmada por el backend. Los totales son los
// persistidos y no se recalculan: lo que se imprime debe coincidir con lo guardado.
type InvoiceDetail struct {
	ID            int64
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Subject       string
	Customer      *Customer
	Items         []DetailItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        InvoiceStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DetailItem snapshot de una línea con el precio y cantidad históricos.
type DetailItem struct {
	ID         int64
	ItemID     int64
	ItemName   string
	Type       string
	Quantity   int
	Price      decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}
