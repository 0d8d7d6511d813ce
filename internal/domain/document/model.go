// Package document construye el modelo de presentación de una factura persistida.
// El mismo modelo alimenta la vista de impresión (HTML) y el PDF directo, de modo
// que ambos documentos muestran exactamente los valores guardados por el backend.
package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/pkg/money"
)

// Mensajes de precondición que ve el usuario.
const (
	MsgInvoiceRequired  = "Invoice data is required for PDF generation"
	MsgNumberMissing    = "Invoice number is missing"
	MsgCustomerRequired = "Customer information is required"
	MsgItemsRequired    = "Invoice must have at least one item"
)

// Title cabecera del documento.
const Title = "INVOICE"

// DateLayout fechas en formato dd/mm/yyyy.
const DateLayout = "02/01/2006"

// Color RGB 0-255.
type Color struct{ R, G, B int }

var (
	ColorPaid   = Color{76, 175, 80}
	ColorUnpaid = Color{244, 67, 54}
)

// Company datos del emisor (bloque "From").
type Company struct {
	Name         string
	AddressLines []string
}

// Field par etiqueta/valor del bloque de detalles.
type Field struct {
	Label string
	Value string
}

// Party bloque "For" con los datos del cliente.
type Party struct {
	Name    string
	Address string
}

// Row fila de la tabla de líneas con la descripción completa.
type Row struct {
	Type        string
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// Summary bloque de totales tal como vienen en la factura.
type Summary struct {
	Subtotal   string
	TaxPercent int64
	TaxLabel   string
	Tax        string
	AmountDue  string
}

// Model modelo de presentación de la factura.
type Model struct {
	Title         string
	InvoiceNumber string
	StatusLabel   string
	StatusColor   Color
	Paid          bool
	From          Company
	Details       []Field
	Customer      Party
	Rows          []Row
	Summary       Summary
}

// Validate comprueba que la factura tenga los datos mínimos para exportarse.
// Devuelve un *PreconditionError con un mensaje descriptivo.
func Validate(d *entity.InvoiceDetail) error {
	switch {
	case d == nil:
		return precondition(MsgInvoiceRequired)
	case strings.TrimSpace(d.InvoiceNumber) == "":
		return precondition(MsgNumberMissing)
	case d.Customer == nil || strings.TrimSpace(d.Customer.Name) == "":
		return precondition(MsgCustomerRequired)
	case len(d.Items) == 0:
		return precondition(MsgItemsRequired)
	}
	return nil
}

// Build valida la factura y arma el modelo. Nunca recalcula totales.
func Build(d *entity.InvoiceDetail, from Company) (*Model, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	paid := d.Status == entity.InvoiceStatusPaid
	color := ColorUnpaid
	if paid {
		color = ColorPaid
	}
	status := string(d.Status)
	if status == "" {
		status = string(entity.InvoiceStatusUnpaid)
	}

	rows := make([]Row, 0, len(d.Items))
	for _, it := range d.Items {
		rows = append(rows, Row{
			Type:        it.Type,
			Description: it.ItemName,
			Quantity:    fmt.Sprintf("%d", it.Quantity),
			UnitPrice:   money.Format(it.Price),
			Amount:      money.Format(it.TotalPrice),
		})
	}

	pct := TaxPercent(d.Tax, d.Subtotal)
	return &Model{
		Title:         Title,
		InvoiceNumber: d.InvoiceNumber,
		StatusLabel:   strings.ToUpper(status),
		StatusColor:   color,
		Paid:          paid,
		From:          from,
		Details: []Field{
			{Label: "Invoice ID", Value: d.InvoiceNumber},
			{Label: "Issue Date", Value: formatDate(d.IssueDate)},
			{Label: "Due Date", Value: formatDate(d.DueDate)},
			{Label: "Subject", Value: d.Subject},
		},
		Customer: Party{Name: d.Customer.Name, Address: d.Customer.Address},
		Rows:     rows,
		Summary: Summary{
			Subtotal:   money.Format(d.Subtotal),
			TaxPercent: pct,
			TaxLabel:   fmt.Sprintf("Tax (%d%%)", pct),
			Tax:        money.Format(d.Tax),
			AmountDue:  money.Format(d.TotalAmount),
		},
	}, nil
}

// TaxPercent deriva el porcentaje de impuesto de los valores guardados,
// redondeado al entero más cercano. Subtotal cero da 0.
func TaxPercent(tax, subtotal decimal.Decimal) int64 {
	if subtotal.IsZero() {
		return 0
	}
	return tax.Div(subtotal).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// PreconditionError error de precondición con el mensaje visible para el usuario.
// Se compara con errors.Is(err, domain.ErrExportPrecondition).
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }
func (e *PreconditionError) Unwrap() error { return domain.ErrExportPrecondition }

func precondition(msg string) error {
	return &PreconditionError{Message: msg}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
