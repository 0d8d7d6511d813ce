package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/application/dto"
)

// CatalogHandler maneja clientes y artículos del catálogo.
type CatalogHandler struct {
	customers *billing.CustomerUseCase
	items     *billing.ItemUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(customers *billing.CustomerUseCase, items *billing.ItemUseCase) *CatalogHandler {
	return &CatalogHandler{customers: customers, items: items}
}

// ListCustomers GET /api/v1/customers
func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.customers.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateCustomer POST /api/v1/customers
func (h *CatalogHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.customers.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SearchItems GET /api/v1/items?name_or_type=&limit=
func (h *CatalogHandler) SearchItems(c *fiber.Ctx) error {
	var q dto.ItemSearchQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	list, err := h.items.Search(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateItem POST /api/v1/items
func (h *CatalogHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.items.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
