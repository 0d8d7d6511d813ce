package repository

import (
	"context"

	"github.com/jhoicas/invoice-system/internal/domain/entity"
)

// ExportLogRepository persiste la auditoría de exportaciones.
type ExportLogRepository interface {
	Create(ctx context.Context, log *entity.ExportLog) error
	ListByInvoice(ctx context.Context, invoiceID int64, limit int) ([]entity.ExportLog, error)
}
