package invoice_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/domain/invoice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func catalogItem(id int64, name string) entity.CatalogItem {
	return entity.CatalogItem{ID: id, Name: name, Type: "service", Price: decimal.NewFromInt(10)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// submittableDraft construye un borrador que cumple todos los requisitos.
func submittableDraft(t *testing.T) *invoice.Draft {
	t.Helper()
	d := invoice.NewDraft()
	d.SetCustomer(7)
	d.SetIssueDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	d.SetDueDate(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	d.SetSubject("Diseño web")
	d.AddItem(catalogItem(1, "Landing page"))
	require.NoError(t, d.SetQuantity(0, "2"))
	require.NoError(t, d.SetUnitPrice(0, "100.00"))
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_EscenarioDosLineas(t *testing.T) {
	items := []invoice.LineItem{
		{CatalogItemID: 1, Quantity: 2, UnitPrice: dec("100.00")},
		{CatalogItemID: 2, Quantity: 1, UnitPrice: dec("50.00")},
	}

	totals := invoice.ComputeTotals(items)

	assert.True(t, totals.Subtotal.Equal(dec("250")), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(dec("25")), "impuesto: %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(dec("275")), "total: %s", totals.GrandTotal)
	assert.True(t, totals.TaxRate.Equal(dec("0.1")))
}

func TestTaxRate_FijaDiezPorCiento(t *testing.T) {
	rate := invoice.TaxRate()
	rate = rate.Add(dec("0.05"))

	assert.Equal(t, "0.15", rate.String())
	assert.True(t, invoice.TaxRate().Equal(dec("0.10")), "la tasa no se altera desde fuera")
	assert.True(t, invoice.ComputeTotals(nil).TaxRate.Equal(invoice.TaxRate()))
}

func TestComputeTotals_ListaVacia(t *testing.T) {
	totals := invoice.ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotals_Idempotente(t *testing.T) {
	items := []invoice.LineItem{
		{CatalogItemID: 1, Quantity: 3, UnitPrice: dec("19.99")},
		{CatalogItemID: 2, Quantity: 7, UnitPrice: dec("0.35")},
	}

	first := invoice.ComputeTotals(items)
	second := invoice.ComputeTotals(items)

	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
	assert.Equal(t, first.TaxAmount.String(), second.TaxAmount.String())
	assert.Equal(t, first.GrandTotal.String(), second.GrandTotal.String())
}

func TestComputeTotals_ImpuestoRedondeadoADosDecimales(t *testing.T) {
	// 3 * 19.99 + 7 * 0.35 = 59.97 + 2.45 = 62.42 → impuesto 6.242 → 6.24
	items := []invoice.LineItem{
		{CatalogItemID: 1, Quantity: 3, UnitPrice: dec("19.99")},
		{CatalogItemID: 2, Quantity: 7, UnitPrice: dec("0.35")},
	}

	totals := invoice.ComputeTotals(items)

	assert.Equal(t, "62.42", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "6.24", totals.TaxAmount.String())
	assert.Equal(t, "68.66", totals.GrandTotal.StringFixed(2))
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TaxAmount)))
}

func TestDraftTotals_SeRecalculanTrasMutar(t *testing.T) {
	d := submittableDraft(t)
	assert.Equal(t, "200", d.Totals().Subtotal.String())

	require.NoError(t, d.SetQuantity(0, "3"))
	assert.Equal(t, "300", d.Totals().Subtotal.String())

	require.NoError(t, d.RemoveItem(0))
	assert.True(t, d.Totals().GrandTotal.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_ValoresIniciales(t *testing.T) {
	d := invoice.NewDraft()
	d.AddItem(catalogItem(1, "Logo"))

	require.Len(t, d.Items, 1)
	li := d.Items[0]
	assert.Equal(t, int64(1), li.CatalogItemID)
	assert.Equal(t, "Logo", li.Name)
	assert.Equal(t, 1, li.Quantity)
	assert.True(t, li.UnitPrice.IsZero(), "el precio inicial es 0 aunque el catálogo tenga precio")
	assert.True(t, li.Amount().IsZero())
}

func TestAddItem_SinControlDeDuplicados(t *testing.T) {
	d := invoice.NewDraft()
	d.AddItem(catalogItem(1, "Logo"))
	d.AddItem(catalogItem(1, "Logo"))

	assert.Len(t, d.Items, 2)
}

func TestAddItems_DescartaDuplicados_GanaElPrimero(t *testing.T) {
	d := invoice.NewDraft()
	assert.Equal(t, 2, d.AddItems([]entity.CatalogItem{catalogItem(1, "A"), catalogItem(2, "B")}))
	assert.Equal(t, 1, d.AddItems([]entity.CatalogItem{catalogItem(2, "B bis"), catalogItem(3, "C")}))

	require.Len(t, d.Items, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{d.Items[0].CatalogItemID, d.Items[1].CatalogItemID, d.Items[2].CatalogItemID})
	assert.Equal(t, "B", d.Items[1].Name, "la línea existente no se reemplaza")
}

func TestAddItems_DuplicadosDentroDelLote(t *testing.T) {
	d := invoice.NewDraft()
	added := d.AddItems([]entity.CatalogItem{catalogItem(5, "X"), catalogItem(5, "X otra vez")})

	assert.Equal(t, 1, added)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "X", d.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Coerción de cantidad y precio
// ──────────────────────────────────────────────────────────────────────────────

func TestCoerceQuantity(t *testing.T) {
	cases := map[string]int{
		"3":   3,
		" 12": 12,
		"0":   1,
		"-4":  1,
		"abc": 1,
		"":    1,
		"2.7": 2,
		"NaN": 1,
	}
	for in, want := range cases {
		assert.Equal(t, want, invoice.CoerceQuantity(in), "entrada %q", in)
	}
}

func TestCoerceQuantity_MismoLimiteEnteroYDecimal(t *testing.T) {
	assert.Equal(t, invoice.MaxQuantity, invoice.CoerceQuantity("2147483647"))
	assert.Equal(t, invoice.MaxQuantity, invoice.CoerceQuantity("2147483647.9"))
	assert.Equal(t, 1, invoice.CoerceQuantity("3000000000"))
	assert.Equal(t, 1, invoice.CoerceQuantity("3000000000.5"))
	assert.Equal(t, 1, invoice.CoerceQuantity("99999999999999999999"))
}

func TestCoercePrice(t *testing.T) {
	cases := map[string]string{
		"19.99": "19.99",
		"0":     "0",
		"-1":    "0",
		"abc":   "0",
		"":      "0",
		" 5 ":   "5",
	}
	for in, want := range cases {
		assert.Equal(t, want, invoice.CoercePrice(in).String(), "entrada %q", in)
	}
}

func TestSetQuantityYPrecio_RecalculanImporte(t *testing.T) {
	d := invoice.NewDraft()
	d.AddItem(catalogItem(1, "Hosting"))

	require.NoError(t, d.SetUnitPrice(0, "12.50"))
	require.NoError(t, d.SetQuantity(0, "4"))
	assert.Equal(t, "50", d.Items[0].Amount().String())

	require.NoError(t, d.SetQuantity(0, "cero"))
	assert.Equal(t, 1, d.Items[0].Quantity)
	assert.Equal(t, "12.5", d.Items[0].Amount().String())

	require.NoError(t, d.SetUnitPrice(0, "-3"))
	assert.True(t, d.Items[0].Amount().IsZero())
}

func TestIndiceFueraDeRango(t *testing.T) {
	d := invoice.NewDraft()

	assert.ErrorIs(t, d.SetQuantity(0, "1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, d.SetUnitPrice(-1, "1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, d.RemoveItem(3), domain.ErrInvalidInput)
}

func TestRemoveItem_Compacta(t *testing.T) {
	d := invoice.NewDraft()
	d.AddItems([]entity.CatalogItem{catalogItem(1, "A"), catalogItem(2, "B"), catalogItem(3, "C")})

	require.NoError(t, d.RemoveItem(1))

	require.Len(t, d.Items, 2)
	assert.Equal(t, int64(1), d.Items[0].CatalogItemID)
	assert.Equal(t, int64(3), d.Items[1].CatalogItemID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y payload
// ──────────────────────────────────────────────────────────────────────────────

func TestIsSubmittable_BorradorVacio(t *testing.T) {
	d := invoice.NewDraft()

	assert.False(t, d.IsSubmittable())
	assert.Len(t, d.Problems(), 5)
	assert.ErrorIs(t, d.Validate(), domain.ErrDraftNotSubmittable)
}

func TestIsSubmittable_BorradorCompleto(t *testing.T) {
	d := submittableDraft(t)

	assert.True(t, d.IsSubmittable())
	assert.Empty(t, d.Problems())
}

func TestIsSubmittable_RequisitosIndividuales(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *invoice.Draft)
	}{
		{"sin cliente", func(d *invoice.Draft) { d.SetCustomer(0) }},
		{"sin fecha de emisión", func(d *invoice.Draft) { d.SetIssueDate(time.Time{}) }},
		{"sin vencimiento", func(d *invoice.Draft) { d.SetDueDate(time.Time{}) }},
		{"asunto en blanco", func(d *invoice.Draft) { d.SetSubject("   ") }},
		{"sin líneas", func(d *invoice.Draft) { d.Items = nil }},
		{"cantidad cero", func(d *invoice.Draft) { d.Items[0].Quantity = 0 }},
		{"precio negativo", func(d *invoice.Draft) { d.Items[0].UnitPrice = dec("-1") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := submittableDraft(t)
			tt.mutate(d)
			assert.False(t, d.IsSubmittable())
		})
	}
}

func TestToSubmission(t *testing.T) {
	d := submittableDraft(t)
	d.AddItem(catalogItem(9, "Soporte"))
	require.NoError(t, d.SetUnitPrice(1, "50"))

	sub, err := d.ToSubmission()
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01T00:00:00Z", sub.IssueDate)
	assert.Equal(t, "2025-03-31T00:00:00Z", sub.DueDate)
	assert.Equal(t, "Diseño web", sub.Subject)
	assert.Equal(t, int64(7), sub.CustomerID)
	require.Len(t, sub.Items, 2)
	assert.Equal(t, int64(1), sub.Items[0].ItemID)
	assert.Equal(t, 2, sub.Items[0].Quantity)
	assert.Equal(t, "100", sub.Items[0].Price.String())
	assert.Equal(t, int64(9), sub.Items[1].ItemID)
}

func TestToSubmission_RechazaBorradorIncompleto(t *testing.T) {
	d := invoice.NewDraft()

	_, err := d.ToSubmission()

	assert.ErrorIs(t, err, domain.ErrDraftNotSubmittable)
	assert.Contains(t, err.Error(), "subject is required")
}

func TestDraftFromDetail(t *testing.T) {
	detail := &entity.InvoiceDetail{
		InvoiceNumber: "INV-0001",
		IssueDate:     time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
		Subject:       "Mantenimiento",
		Customer:      &entity.Customer{ID: 3, Name: "Acme"},
		Items: []entity.DetailItem{
			{ItemID: 4, ItemName: "Soporte", Type: "service", Quantity: 2, Price: dec("30"), TotalPrice: dec("60")},
		},
	}

	d := invoice.DraftFromDetail(detail)

	assert.Equal(t, int64(3), d.CustomerID)
	assert.Equal(t, "Mantenimiento", d.Subject)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "60", d.Items[0].Amount().String())
	assert.True(t, d.IsSubmittable())
}
