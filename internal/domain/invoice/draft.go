package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
)

// LineItem una línea del borrador. El importe no se almacena: se deriva siempre
// de Quantity * UnitPrice.
type LineItem struct {
	CatalogItemID int64
	Name          string
	Type          string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// Amount importe de la línea (cantidad * precio unitario).
func (li LineItem) Amount() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Draft borrador de factura en edición. Se crea vacío, se muta con las operaciones
// de edición y se consume una vez con ToSubmission.
type Draft struct {
	CustomerID int64
	IssueDate  time.Time
	DueDate    time.Time
	Subject    string
	Items      []LineItem
}

// NewDraft crea un borrador vacío.
func NewDraft() *Draft {
	return &Draft{Items: []LineItem{}}
}

// DraftFromDetail carga un borrador de edición a partir de una factura persistida.
// Las cantidades y precios históricos se copian tal cual.
func DraftFromDetail(d *entity.InvoiceDetail) *Draft {
	draft := NewDraft()
	if d == nil {
		return draft
	}
	if d.Customer != nil {
		draft.CustomerID = d.Customer.ID
	}
	draft.IssueDate = d.IssueDate
	draft.DueDate = d.DueDate
	draft.Subject = d.Subject
	draft.Items = lo.Map(d.Items, func(it entity.DetailItem, _ int) LineItem {
		return LineItem{
			CatalogItemID: it.ItemID,
			Name:          it.ItemName,
			Type:          it.Type,
			Quantity:      it.Quantity,
			UnitPrice:     it.Price,
		}
	})
	return draft
}

// Mutadores de cabecera del borrador.
func (d *Draft) SetCustomer(id int64)      { d.CustomerID = id }
func (d *Draft) SetIssueDate(t time.Time)  { d.IssueDate = t }
func (d *Draft) SetDueDate(t time.Time)    { d.DueDate = t }
func (d *Draft) SetSubject(subject string) { d.Subject = subject }

// AddItem agrega una línea nueva con cantidad 1 y precio 0. No controla duplicados.
func (d *Draft) AddItem(item entity.CatalogItem) {
	d.Items = append(d.Items, newLine(item))
}

// AddItems agrega varias líneas de una vez descartando las que ya existen en el
// borrador (o repetidas dentro del mismo lote); gana la primera. Devuelve cuántas agregó.
func (d *Draft) AddItems(items []entity.CatalogItem) int {
	seen := lo.SliceToMap(d.Items, func(li LineItem) (int64, struct{}) {
		return li.CatalogItemID, struct{}{}
	})
	added := 0
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		d.Items = append(d.Items, newLine(it))
		added++
	}
	return added
}

// SetQuantity fija la cantidad de la línea i a partir de la entrada del usuario.
func (d *Draft) SetQuantity(i int, raw string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items[i].Quantity = CoerceQuantity(raw)
	return nil
}

// SetUnitPrice fija el precio unitario de la línea i a partir de la entrada del usuario.
func (d *Draft) SetUnitPrice(i int, raw string) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items[i].UnitPrice = CoercePrice(raw)
	return nil
}

// RemoveItem elimina la línea i y compacta la lista.
func (d *Draft) RemoveItem(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return nil
}

// Totals recalcula los totales en cada lectura.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Items)
}

// Problems lista los requisitos de envío que el borrador no cumple.
func (d *Draft) Problems() []string {
	var p []string
	if d.CustomerID <= 0 {
		p = append(p, "customer is required")
	}
	if d.IssueDate.IsZero() {
		p = append(p, "issue date is required")
	}
	if d.DueDate.IsZero() {
		p = append(p, "due date is required")
	}
	if strings.TrimSpace(d.Subject) == "" {
		p = append(p, "subject is required")
	}
	if len(d.Items) == 0 {
		p = append(p, "at least one item is required")
	}
	for i, it := range d.Items {
		if it.Quantity <= 0 {
			p = append(p, fmt.Sprintf("item %d: quantity must be greater than 0", i+1))
		}
		if it.UnitPrice.IsNegative() {
			p = append(p, fmt.Sprintf("item %d: price must not be negative", i+1))
		}
	}
	return p
}

// Validate devuelve domain.ErrDraftNotSubmittable junto con cada requisito incumplido.
func (d *Draft) Validate() error {
	problems := d.Problems()
	if len(problems) == 0 {
		return nil
	}
	errs := []error{domain.ErrDraftNotSubmittable}
	for _, p := range problems {
		errs = append(errs, errors.New(p))
	}
	return errors.Join(errs...)
}

// IsSubmittable indica si el borrador puede enviarse al backend. No hay envíos parciales.
func (d *Draft) IsSubmittable() bool {
	return len(d.Problems()) == 0
}

func (d *Draft) checkIndex(i int) error {
	if i < 0 || i >= len(d.Items) {
		return fmt.Errorf("%w: línea %d fuera de rango (%d líneas)", domain.ErrInvalidInput, i, len(d.Items))
	}
	return nil
}

func newLine(item entity.CatalogItem) LineItem {
	return LineItem{
		CatalogItemID: item.ID,
		Name:          item.Name,
		Type:          item.Type,
		Quantity:      1,
		UnitPrice:     decimal.Zero,
	}
}
