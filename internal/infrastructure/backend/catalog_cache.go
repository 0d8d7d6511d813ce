package backend

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

const customersKey = "customers"

var (
	_ repository.CustomerRepository = (*CachedCustomers)(nil)
	_ repository.ItemRepository     = (*CachedItems)(nil)
)

// CachedCustomers decora un CustomerRepository con una caché en memoria.
// Crear un cliente invalida la lista.
type CachedCustomers struct {
	next  repository.CustomerRepository
	cache *cache.Cache
}

// NewCachedCustomers envuelve next con TTL ttl. Con ttl <= 0 devuelve next sin caché.
func NewCachedCustomers(next repository.CustomerRepository, ttl time.Duration) repository.CustomerRepository {
	if ttl <= 0 {
		return next
	}
	return &CachedCustomers{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (r *CachedCustomers) List(ctx context.Context) ([]entity.Customer, error) {
	if v, ok := r.cache.Get(customersKey); ok {
		return v.([]entity.Customer), nil
	}
	list, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(customersKey, list)
	return list, nil
}

func (r *CachedCustomers) Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	created, err := r.next.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	r.cache.Delete(customersKey)
	return created, nil
}

// CachedItems decora un ItemRepository cacheando cada búsqueda (consulta + límite).
type CachedItems struct {
	next  repository.ItemRepository
	cache *cache.Cache
}

// NewCachedItems envuelve next con TTL ttl. Con ttl <= 0 devuelve next sin caché.
func NewCachedItems(next repository.ItemRepository, ttl time.Duration) repository.ItemRepository {
	if ttl <= 0 {
		return next
	}
	return &CachedItems{next: next, cache: cache.New(ttl, 2*ttl)}
}

func (r *CachedItems) Search(ctx context.Context, query string, limit int) ([]entity.CatalogItem, error) {
	key := query + "|" + strconv.Itoa(limit)
	if v, ok := r.cache.Get(key); ok {
		return v.([]entity.CatalogItem), nil
	}
	items, err := r.next.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	r.cache.SetDefault(key, items)
	return items, nil
}

func (r *CachedItems) Create(ctx context.Context, item *entity.CatalogItem) (*entity.CatalogItem, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	r.cache.Flush()
	return created, nil
}
