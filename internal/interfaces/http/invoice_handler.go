package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas y borradores.
type InvoiceHandler struct {
	invoices *billing.InvoiceUseCase
	drafts   *billing.DraftUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(invoices *billing.InvoiceUseCase, drafts *billing.DraftUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, drafts: drafts}
}

// List GET /api/v1/invoices?customer_name=&status=&page=&limit=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var q dto.InvoiceListQuery
	if ok, err := parseQuery(c, &q); !ok {
		return err
	}
	out, err := h.invoices.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "invalid invoice id")
	}
	out, err := h.invoices.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create valida el borrador y lo envía al backend.
// POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.drafts.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/v1/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "invalid invoice id")
	}
	var in dto.DraftRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.drafts.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// EditDraft carga la factura como borrador editable.
// GET /api/v1/invoices/:id/draft
func (h *InvoiceHandler) EditDraft(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "VALIDATION", "invalid invoice id")
	}
	out, err := h.drafts.EditDraft(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Totals vista previa de líneas, totales y requisitos pendientes.
// POST /api/v1/drafts/totals
func (h *InvoiceHandler) Totals(c *fiber.Ctx) error {
	var in dto.DraftRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.drafts.Preview(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
