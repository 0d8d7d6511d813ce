package repository

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
)

// CustomerRepository define el puerto del catálogo de clientes.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
}
