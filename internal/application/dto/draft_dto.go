package dto

import "github.com/shopspring/decimal"

// DraftRequest borrador de factura tal como lo envía el editor. Las cantidades y
// precios llegan crudos (número o texto) y se normalizan en el dominio.
type DraftRequest struct {
	CustomerID int64              `json:"customer_id" validate:"gte=0"`
	IssueDate  string             `json:"issue_date"`
	DueDate    string             `json:"due_date"`
	Subject    string             `json:"subject" validate:"max=255"`
	Items      []DraftItemRequest `json:"items" validate:"dive"`
}

// DraftItemRequest línea del borrador.
type DraftItemRequest struct {
	ItemID   int64      `json:"item_id" validate:"required,gt=0"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Quantity FlexString `json:"quantity"`
	Price    FlexString `json:"price"`
}

// DraftLineResponse línea normalizada con su importe.
type DraftLineResponse struct {
	ItemID   int64           `json:"item_id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// DraftResponse borrador normalizado: líneas, totales y requisitos pendientes.
type DraftResponse struct {
	CustomerID  int64               `json:"customer_id"`
	IssueDate   string              `json:"issue_date,omitempty"`
	DueDate     string              `json:"due_date,omitempty"`
	Subject     string              `json:"subject"`
	Items       []DraftLineResponse `json:"items"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	TaxRate     decimal.Decimal     `json:"tax_rate"`
	Tax         decimal.Decimal     `json:"tax"`
	Total       decimal.Decimal     `json:"total"`
	Submittable bool                `json:"submittable"`
	Problems    []string            `json:"problems"`
}
