package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-system/internal/application/billing"
	"github.com/jhoicas/invoice-system/internal/application/dto"
	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
)

// writeError traduce errores de dominio a status HTTP y dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var rejected *billing.DraftRejectedError
	var pre *document.PreconditionError
	status, body := fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}

	switch {
	case errors.As(err, &rejected):
		status = fiber.StatusUnprocessableEntity
		body = dto.ErrorResponse{Code: "DRAFT_NOT_SUBMITTABLE", Message: "the invoice draft is incomplete", Details: rejected.Problems}
	case errors.As(err, &pre):
		status = fiber.StatusUnprocessableEntity
		body = dto.ErrorResponse{Code: "EXPORT_PRECONDITION", Message: pre.Message}
	case errors.Is(err, domain.ErrInvalidInput):
		status = fiber.StatusBadRequest
		body = dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
		body = dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrExportInProgress):
		status = fiber.StatusConflict
		body = dto.ErrorResponse{Code: "EXPORT_IN_PROGRESS", Message: "an export is already in progress"}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
		body = dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrBackendRejected):
		status = fiber.StatusUnprocessableEntity
		body = dto.ErrorResponse{Code: "BACKEND_REJECTED", Message: err.Error()}
	case errors.Is(err, domain.ErrBackendUnavailable):
		status = fiber.StatusBadGateway
		body = dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: billing.MsgNetworkError}
	case errors.Is(err, domain.ErrRender):
		body = dto.ErrorResponse{Code: "RENDER_FAILED", Message: billing.MsgGenerateFailed}
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, code, msg string, details ...string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg, Details: details})
}
