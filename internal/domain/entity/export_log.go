package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de exportación de una factura.
const (
	ExportModePDF   = "pdf"
	ExportModePrint = "print"
)

// Resultados de una exportación.
const (
	ExportStatusSucceeded = "succeeded"
	ExportStatusFailed    = "failed"
)

// ExportLog registro de auditoría de una exportación (PDF o impresión).
type ExportLog struct {
	ID            string
	InvoiceID     int64
	InvoiceNumber string
	Mode          string
	Filename      string
	Status        string
	Error         string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
}
