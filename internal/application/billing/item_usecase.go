package billing

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

// defaultItemLimit resultados por búsqueda si no se indica límite.
const defaultItemLimit = 20

// ItemUseCase búsqueda y alta de artículos del catálogo.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Search busca artículos por nombre o tipo.
func (uc *ItemUseCase) Search(ctx context.Context, q dto.ItemSearchQuery) ([]dto.ItemResponse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultItemLimit
	}
	items, err := uc.repo.Search(ctx, strings.TrimSpace(q.NameOrType), limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(it entity.CatalogItem, _ int) dto.ItemResponse { return toItemResponse(it) }), nil
}

// Create da de alta un artículo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := &entity.CatalogItem{
		Name: strings.TrimSpace(in.Name),
		Type: strings.ToLower(strings.TrimSpace(in.Type)),
	}
	if item.Name == "" || item.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	out := toItemResponse(*created)
	return &out, nil
}
