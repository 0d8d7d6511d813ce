package billing

import (
	"context"
	"errors"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
)

// Mensajes de error de exportación visibles para el usuario.
const (
	MsgNetworkError   = "Network error. Please check your connection."
	MsgGenerateFailed = "Failed to generate PDF. Please try again."
	MsgInvoiceMissing = "Invoice not found"
)

// NormalizeExportError traduce un error de exportación al mensaje que ve el
// usuario. Las precondiciones se muestran tal cual.
func NormalizeExportError(err error) string {
	if err == nil {
		return ""
	}
	var pre *document.PreconditionError
	switch {
	case errors.As(err, &pre):
		return pre.Message
	case errors.Is(err, domain.ErrNotFound):
		return MsgInvoiceMissing
	case errors.Is(err, domain.ErrBackendUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return MsgNetworkError
	default:
		return MsgGenerateFailed
	}
}
