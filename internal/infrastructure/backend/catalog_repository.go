package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.ItemRepository     = (*ItemRepo)(nil)
)

// CustomerRepo implementación de CustomerRepository sobre /customers.
type CustomerRepo struct {
	c *Client
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(c *Client) *CustomerRepo {
	return &CustomerRepo{c: c}
}

// List GET /customers
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	var out []customerWire
	if err := r.c.do(ctx, http.MethodGet, "/customers", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	return lo.Map(out, func(w customerWire, _ int) entity.Customer { return w.toEntity() }), nil
}

// Create POST /customers. El backend puede no devolver el cliente creado; en ese
// caso se devuelve el de entrada sin ID.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	var out customerWire
	if err := r.c.do(ctx, http.MethodPost, "/customers", nil, customerToWire(customer), &out); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	if out.Name == "" {
		cp := *customer
		return &cp, nil
	}
	created := out.toEntity()
	return &created, nil
}

// ItemRepo implementación de ItemRepository sobre /items.
type ItemRepo struct {
	c *Client
}

// NewItemRepository construye el adaptador.
func NewItemRepository(c *Client) *ItemRepo {
	return &ItemRepo{c: c}
}

// Search GET /items?name_or_type=&limit=
func (r *ItemRepo) Search(ctx context.Context, query string, limit int) ([]entity.CatalogItem, error) {
	q := url.Values{}
	if s := strings.TrimSpace(query); s != "" {
		q.Set("name_or_type", s)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []itemWire
	if err := r.c.do(ctx, http.MethodGet, "/items", q, nil, &out); err != nil {
		return nil, fmt.Errorf("buscar artículos: %w", err)
	}
	// Los artículos inactivos no se ofrecen para facturar.
	active := lo.Filter(out, func(w itemWire, _ int) bool { return w.IsActive == nil || *w.IsActive })
	return lo.Map(active, func(w itemWire, _ int) entity.CatalogItem { return w.toEntity() }), nil
}

// Create POST /items
func (r *ItemRepo) Create(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error) {
	in := itemWire{Name: item.Name, Type: item.Type}
	var out itemWire
	if err := r.c.do(ctx, http.MethodPost, "/items", nil, in, &out); err != nil {
		return nil, fmt.Errorf("crear artículo: %w", err)
	}
	if out.Name == "" {
		cp := *item
		return &cp, nil
	}
	created := out.toEntity()
	return &created, nil
}
