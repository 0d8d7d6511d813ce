package dto

import "github.com/shopspring/decimal"

// PDFExportQuery opciones de GET /api/v1/invoices/:id/pdf.
type PDFExportQuery struct {
	Filename    string  `query:"filename" validate:"omitempty,max=200,endswith=.pdf"`
	Format      string  `query:"format" validate:"omitempty,oneof=a4 letter A4 Letter"`
	Orientation string  `query:"orientation" validate:"omitempty,oneof=portrait landscape"`
	Quality     float64 `query:"quality" validate:"omitempty,gt=0,lte=4"`
	// Margin margen uniforme en mm; 0 usa el valor por defecto.
	Margin float64 `query:"margin" validate:"gte=0,lt=100"`
	// Márgenes por lado; tienen prioridad sobre Margin.
	MarginTop    float64 `query:"margin_top" validate:"gte=0,lt=100"`
	MarginRight  float64 `query:"margin_right" validate:"gte=0,lt=100"`
	MarginBottom float64 `query:"margin_bottom" validate:"gte=0,lt=100"`
	MarginLeft   float64 `query:"margin_left" validate:"gte=0,lt=100"`
}

// ExportHistoryQuery parámetros de GET /api/v1/invoices/:id/exports.
type ExportHistoryQuery struct {
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

// PrintQuery opciones de GET /api/v1/invoices/:id/print.
type PrintQuery struct {
	AutoPrint bool `query:"autoprint"`
}

// ExportStatusResponse estado de la exportación en curso o la última terminada.
type ExportStatusResponse struct {
	ID      string `json:"id,omitempty"`
	Pending bool   `json:"pending"`
	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
}

// ExportLogResponse registro de auditoría.
type ExportLogResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Mode          string          `json:"mode"`
	Filename      string          `json:"filename,omitempty"`
	Status        string          `json:"status"`
	Error         string          `json:"error,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     string          `json:"created_at"`
}
