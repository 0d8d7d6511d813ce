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

// CustomerUseCase casos de uso para clientes (facturación).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if customer.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	out := toCustomerResponse(*created)
	return &out, nil
}

// List lista los clientes del catálogo.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(c entity.Customer, _ int) dto.CustomerResponse { return toCustomerResponse(c) }), nil
}
