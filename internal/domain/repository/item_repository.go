package repository

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
)

// ItemRepository define el puerto del catálogo de artículos facturables.
type ItemRepository interface {
	// Search filtra por nombre o tipo; query vacío devuelve los primeros limit artículos.
	Search(ctx context.Context, query string, limit int) ([]entity.CatalogItem, error)
	Create(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error)
}
