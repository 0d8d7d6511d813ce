package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
	"github.com/jhoicas/invoice-system/internal/domain/entity"
	"github.com/jhoicas/invoice-system/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const longDescription = "Custom illustration package, 3 revisions" // 40 caracteres

func detailWithItems(n int) *entity.InvoiceDetail {
	items := make([]entity.DetailItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entity.DetailItem{
			ItemID: int64(i + 1), ItemName: fmt.Sprintf("Item %d", i+1), Type: "service",
			Quantity: 1, Price: decimal.NewFromInt(10), TotalPrice: decimal.NewFromInt(10),
		})
	}
	return &entity.InvoiceDetail{
		InvoiceNumber: "INV-0042",
		IssueDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Subject:       "Servicios mensuales",
		Customer:      &entity.Customer{Name: "Acme Ltd", Address: "1 Main St"},
		Items:         items,
		Subtotal:      decimal.NewFromInt(int64(10 * n)),
		Tax:           decimal.NewFromInt(int64(n)),
		TotalAmount:   decimal.NewFromInt(int64(11 * n)),
		Status:        entity.InvoiceStatusUnpaid,
	}
}

func buildModel(t *testing.T, d *entity.InvoiceDetail) *document.Model {
	t.Helper()
	m, err := document.Build(d, document.Company{Name: "Discovery Designs", AddressLines: []string{"Glasgow G1 2ER"}})
	require.NoError(t, err)
	return m
}

func findText(prog *pdf.Program, s string) (pdf.Op, bool) {
	for _, pg := range prog.Pages {
		for _, op := range pg.Ops {
			if op.Kind == pdf.OpText && op.Text == s {
				return op, true
			}
		}
	}
	return pdf.Op{}, false
}

// ──────────────────────────────────────────────────────────────────────────────
// Truncado y etiqueta de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestTruncateDescription(t *testing.T) {
	require.Len(t, longDescription, 40)

	got := pdf.TruncateDescription(longDescription)

	assert.Equal(t, longDescription[:22]+"...", got)
	assert.Equal(t, "Short one", pdf.TruncateDescription("Short one"))
	exact := strings.Repeat("x", 25)
	assert.Equal(t, exact, pdf.TruncateDescription(exact), "25 caracteres no se recortan")
}

func TestLayout_DescripcionLargaRecortadaEnTabla(t *testing.T) {
	d := detailWithItems(1)
	d.Items[0].ItemName = longDescription

	prog, err := pdf.Layout(buildModel(t, d), pdf.Options{})
	require.NoError(t, err)

	_, ok := findText(prog, longDescription[:22]+"...")
	assert.True(t, ok, "la descripción debe aparecer recortada")
	_, ok = findText(prog, longDescription)
	assert.False(t, ok, "la descripción completa no debe dibujarse")
}

func TestLayout_EtiquetaDeEstado(t *testing.T) {
	prog, err := pdf.Layout(buildModel(t, detailWithItems(1)), pdf.Options{})
	require.NoError(t, err)

	var pill *pdf.Op
	for i, op := range prog.Pages[0].Ops {
		if op.Kind == pdf.OpRoundedRect {
			pill = &prog.Pages[0].Ops[i]
		}
	}
	require.NotNil(t, pill)
	assert.Equal(t, document.ColorUnpaid, *pill.Fill)
	assert.Equal(t, pdf.PillWidth("UNPAID"), pill.W)
	assert.Equal(t, float64(26), pill.W)
	assert.Equal(t, float64(8), pill.H)

	label, ok := findText(prog, "UNPAID")
	require.True(t, ok)
	assert.True(t, label.Bold)
	assert.Equal(t, pdf.AlignCenter, label.Align)
}

func TestLayout_EtiquetaDentroDeLaPaginaConMargenSuperiorPequeno(t *testing.T) {
	opts := pdf.Options{Margins: pdf.Margins{Top: 3, Right: 20, Bottom: 20, Left: 20}}
	prog, err := pdf.Layout(buildModel(t, detailWithItems(1)), opts)
	require.NoError(t, err)

	for _, op := range prog.Pages[0].Ops {
		if op.Kind == pdf.OpRoundedRect {
			assert.GreaterOrEqual(t, op.Y, 0.0)
			return
		}
	}
	t.Fatal("no se dibujó la etiqueta de estado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Contenido
// ──────────────────────────────────────────────────────────────────────────────

func TestLayout_BloquesYTotales(t *testing.T) {
	d := detailWithItems(2)
	d.Subtotal = decimal.NewFromInt(250)
	d.Tax = decimal.NewFromInt(25)
	d.TotalAmount = decimal.NewFromInt(275)

	prog, err := pdf.Layout(buildModel(t, d), pdf.Options{})
	require.NoError(t, err)

	texts := prog.Texts()
	for _, want := range []string{
		"INVOICE", "From", "Discovery Designs", "For", "Acme Ltd", "1 Main St",
		"Invoice ID", "INV-0042", "Issue Date", "01/06/2025", "Due Date", "30/06/2025", "Subject",
		"Item Type", "Description", "Quantity", "Unit Price", "Amount",
		"Subtotal", "$250.00", "Tax (10%)", "$25.00", "Amount Due", "$275.00",
	} {
		assert.Contains(t, texts, want)
	}

	due, _ := findText(prog, "Amount Due")
	assert.Equal(t, float64(12), due.FontSize)
	assert.True(t, due.Bold)
	title, _ := findText(prog, "INVOICE")
	assert.Equal(t, float64(36), title.FontSize)
	assert.Equal(t, "Invoice-INV-0042", prog.Title)
}

func TestLayout_FilasCebra(t *testing.T) {
	prog, err := pdf.Layout(buildModel(t, detailWithItems(4)), pdf.Options{})
	require.NoError(t, err)

	zebra := 0
	for _, op := range prog.Pages[0].Ops {
		if op.Kind == pdf.OpRect && op.Fill != nil && *op.Fill == (document.Color{R: 248, G: 248, B: 248}) {
			zebra++
		}
	}
	assert.Equal(t, 2, zebra, "solo las filas impares llevan fondo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginación y opciones
// ──────────────────────────────────────────────────────────────────────────────

func TestLayout_PaginaCuandoLasFilasNoCaben(t *testing.T) {
	prog, err := pdf.Layout(buildModel(t, detailWithItems(60)), pdf.Options{})
	require.NoError(t, err)

	require.Greater(t, len(prog.Pages), 1)
	mg := pdf.DefaultOptions().Margins
	for _, pg := range prog.Pages {
		for _, op := range pg.Ops {
			if op.Kind == pdf.OpRect {
				assert.LessOrEqual(t, op.Y+op.H, prog.Height-mg.Bottom+0.001, "ningún rectángulo cruza el margen inferior")
			}
		}
	}

	// La primera fila de la segunda página arranca en el margen superior.
	var first *pdf.Op
	for i, op := range prog.Pages[1].Ops {
		if op.Kind == pdf.OpRect {
			first = &prog.Pages[1].Ops[i]
			break
		}
	}
	require.NotNil(t, first)
	assert.Equal(t, mg.Top, first.Y)

	_, ok := findText(prog, "Item 60")
	assert.True(t, ok)
}

func TestLayout_FormatoYOrientacion(t *testing.T) {
	prog, err := pdf.Layout(buildModel(t, detailWithItems(1)), pdf.Options{Format: "Letter", Orientation: "landscape"})
	require.NoError(t, err)

	assert.Equal(t, pdf.FormatLetter, prog.Format)
	assert.InDelta(t, 279.4, prog.Width, 0.001)
	assert.InDelta(t, 215.9, prog.Height, 0.001)
}

func TestOptions_Validate(t *testing.T) {
	bad := []pdf.Options{
		{Format: "a3"},
		{Orientation: "diagonal"},
		{Quality: -1},
		{Quality: 10},
		{Margins: pdf.Margins{Top: -1, Right: 1, Bottom: 1, Left: 1}},
		{Margins: pdf.UniformMargins(80)},
	}
	for _, o := range bad {
		_, err := pdf.Layout(buildModel(t, detailWithItems(1)), o)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "opciones %+v", o)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"inv.pdf":            "inv.pdf",
		`a"; x=1.pdf`:        "a; x=1.pdf",
		"../../etc/passwd":   "passwd.pdf",
		`C:\tmp\factura.PDF`: "factura.PDF",
		"linea\r\nnueva.pdf": "lineanueva.pdf",
		"reporte":            "reporte.pdf",
		"  ":                 "",
		".pdf":               "",
		"":                   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.SanitizeFilename(in), "entrada %q", in)
	}
}

func TestDefaultOptionsYNombreDeArchivo(t *testing.T) {
	o := pdf.DefaultOptions()
	assert.Equal(t, pdf.FormatA4, o.Format)
	assert.Equal(t, pdf.OrientationPortrait, o.Orientation)
	assert.Equal(t, 1.0, o.Quality)
	assert.Equal(t, pdf.UniformMargins(20), o.Margins)

	name := pdf.DefaultFilename("INV-7", time.Date(2025, 2, 9, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, "invoice-INV-7-2025-02-09.pdf", name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Renderer gofpdf
// ──────────────────────────────────────────────────────────────────────────────

func TestGofpdfRenderer_GeneraPDF(t *testing.T) {
	prog, err := pdf.Layout(buildModel(t, detailWithItems(30)), pdf.Options{})
	require.NoError(t, err)

	out, err := pdf.NewGofpdfRenderer("invoice-system").Render(context.Background(), prog)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "debe empezar con la cabecera PDF")
	assert.Contains(t, string(out[len(out)-16:]), "%%EOF")
}

func TestGofpdfRenderer_ProgramaVacio(t *testing.T) {
	_, err := pdf.NewGofpdfRenderer("").Render(context.Background(), &pdf.Program{})
	assert.ErrorIs(t, err, domain.ErrRender)
}

func TestGofpdfRenderer_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewGofpdfRenderer("").Render(ctx, &pdf.Program{Pages: []pdf.Page{{}}})
	assert.ErrorIs(t, err, context.Canceled)
}
