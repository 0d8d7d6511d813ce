package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,max=32"`
	Address string `json:"address" validate:"required,max=500"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ItemSearchQuery filtros de GET /api/v1/items.
type ItemSearchQuery struct {
	NameOrType string `query:"name_or_type" validate:"max=100"`
	Limit      int    `query:"limit" validate:"min=0,max=100"`
}

// CreateItemRequest body para POST /api/v1/items.
type CreateItemRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Type string `json:"type" validate:"required,oneof=product service"`
}

// ItemResponse artículo del catálogo.
type ItemResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}
