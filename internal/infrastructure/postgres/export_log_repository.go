package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/repository"
)

var _ repository.ExportLogRepository = (*ExportLogRepo)(nil)

// defaultLogLimit máximo de registros devueltos por ListByInvoice si no se indica.
const defaultLogLimit = 50

// ExportLogRepo implementación de ExportLogRepository sobre la tabla export_logs.
type ExportLogRepo struct {
	q Querier
}

// NewExportLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExportLogRepository(q Querier) *ExportLogRepo {
	return &ExportLogRepo{q: q}
}

// Create inserta un registro. Asigna ID y CreatedAt si vienen vacíos.
func (r *ExportLogRepo) Create(ctx context.Context, l *entity.ExportLog) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO export_logs (id, invoice_id, invoice_number, mode, filename, status, error, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.InvoiceID, l.InvoiceNumber, l.Mode, nullIfEmpty(l.Filename), l.Status, nullIfEmpty(l.Error),
		l.TotalAmount, l.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert export_log: %w", err)
	}
	return nil
}

// ListByInvoice devuelve las exportaciones de una factura, la más reciente primero.
func (r *ExportLogRepo) ListByInvoice(ctx context.Context, invoiceID int64, limit int) ([]entity.ExportLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	query := `
		SELECT id, invoice_id, invoice_number, mode, COALESCE(filename, ''), status, COALESCE(error, ''), total_amount, created_at
		FROM export_logs WHERE invoice_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, invoiceID, limit)
	if err != nil {
		return nil, fmt.Errorf("list export_logs: %w", err)
	}
	defer rows.Close()

	var out []entity.ExportLog
	for rows.Next() {
		var l entity.ExportLog
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.InvoiceNumber, &l.Mode, &l.Filename, &l.Status, &l.Error,
			&l.TotalAmount, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export_log: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// NopExportLog descarta la auditoría cuando no hay base de datos configurada.
type NopExportLog struct{}

var _ repository.ExportLogRepository = NopExportLog{}

func (NopExportLog) Create(context.Context, *entity.ExportLog) error { return nil }

func (NopExportLog) ListByInvoice(context.Context, int64, int) ([]entity.ExportLog, error) {
	return nil, nil
}
