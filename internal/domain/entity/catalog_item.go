package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem representa un artículo facturable (producto o servicio) del catálogo.
type CatalogItem struct {
	ID        int64
	Name      string
	Type      string // "product", "service", ...
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
