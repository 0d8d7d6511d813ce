package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato ISO-8601 (RFC 3339, UTC) de las fechas del payload.
const DateLayout = time.RFC3339

// Submission payload de alta o modificación de factura.
type Submission struct {
	IssueDate  string
	DueDate    string
	Subject    string
	CustomerID int64
	Items      []SubmissionItem
}

// SubmissionItem línea del payload.
type SubmissionItem struct {
	ItemID   int64
	Quantity int
	Price    decimal.Decimal
}

// ToSubmission consume el borrador y construye el payload. Si el borrador no
// cumple los requisitos no se genera nada.
func (d *Draft) ToSubmission() (Submission, error) {
	if err := d.Validate(); err != nil {
		return Submission{}, err
	}
	items := make([]SubmissionItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, SubmissionItem{
			ItemID:   it.CatalogItemID,
			Quantity: it.Quantity,
			Price:    it.UnitPrice,
		})
	}
	return Submission{
		IssueDate:  formatDate(d.IssueDate),
		DueDate:    formatDate(d.DueDate),
		Subject:    d.Subject,
		CustomerID: d.CustomerID,
		Items:      items,
	}, nil
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
