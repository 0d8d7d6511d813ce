// Package pdf genera las representaciones PDF de las facturas.
//
// El PDF directo se construye en dos pasos: Layout calcula un programa de dibujo
// en milímetros (independiente de la librería) y GofpdfRenderer lo serializa.
//
//	┌──────────────────────────────────────────────────────┐
//	│  INVOICE  [PAID]                      From │ Empresa  │
//	│                                                      │
//	│  Invoice ID / Issue Date / Due Date   For  │ Cliente  │
//	│  ──────────────────────────────────────────────────  │
//	│  Item Type │ Description │ Qty │ Unit Price │ Amount │
//	│  ...filas cebra, paginadas...                        │
//	│                         Subtotal / Tax (N%) / Due    │
//	│  ──────────────────────────────────────────────────  │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	"github.com/jhoicas/invoice-system/internal/domain/document"
)

// Medidas del layout (mm) y tamaños de fuente (pt).
const (
	rowHeight       = 7.0
	tableHeadHeight = 8.0
	pillHeight      = 8.0
	pillRadius      = 1.0
	pillOffsetX     = 120.0
	rightColumnW    = 70.0
	summaryWidth    = 60.0
	// Alto reservado para el bloque de totales y la línea de cierre.
	summaryHeight = 32.0

	// MaxDescriptionChars longitud máxima de la descripción en la tabla.
	MaxDescriptionChars = 25
	truncatedChars      = 22
)

var (
	black     = document.Color{}
	white     = document.Color{R: 255, G: 255, B: 255}
	gray120   = document.Color{R: 120, G: 120, B: 120}
	gray100   = document.Color{R: 100, G: 100, B: 100}
	gray60    = document.Color{R: 60, G: 60, B: 60}
	headFill  = document.Color{R: 240, G: 240, B: 240}
	headLine  = document.Color{R: 180, G: 180, B: 180}
	zebraFill = document.Color{R: 248, G: 248, B: 248}
	rowLine   = document.Color{R: 220, G: 220, B: 220}
	footLine  = document.Color{R: 200, G: 200, B: 200}
)

// OpKind tipo de instrucción de dibujo.
type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpRoundedRect
	OpLine
)

// Align alineación horizontal de un texto respecto a X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Op una instrucción de dibujo en coordenadas de página (mm).
type Op struct {
	Kind OpKind

	X, Y float64
	// Rect / RoundedRect
	W, H   float64
	Radius float64
	// Line
	X2, Y2 float64

	Fill      *document.Color
	Stroke    *document.Color
	LineWidth float64

	// Text
	Text      string
	FontSize  float64
	Bold      bool
	TextColor document.Color
	Align     Align
}

// Page instrucciones de una página.
type Page struct {
	Ops []Op
}

// Program documento completo listo para serializar.
type Program struct {
	Format      string
	Orientation string
	Width       float64
	Height      float64
	Title       string
	Pages       []Page
}

// Texts devuelve todos los textos del programa en orden de dibujo.
func (p *Program) Texts() []string {
	var out []string
	for _, pg := range p.Pages {
		for _, op := range pg.Ops {
			if op.Kind == OpText {
				out = append(out, op.Text)
			}
		}
	}
	return out
}

// TruncateDescription recorta descripciones largas para la columna de ancho fijo.
func TruncateDescription(s string) string {
	r := []rune(s)
	if len(r) > MaxDescriptionChars {
		return string(r[:truncatedChars]) + "..."
	}
	return s
}

// PillWidth ancho de la etiqueta de estado según su texto.
func PillWidth(label string) float64 {
	return float64(len([]rune(label)))*3 + 8
}

// canvas acumula instrucciones y controla la página actual.
type canvas struct {
	prog *Program
	cur  *Page
}

func (c *canvas) addPage() {
	c.prog.Pages = append(c.prog.Pages, Page{})
	c.cur = &c.prog.Pages[len(c.prog.Pages)-1]
}

func (c *canvas) text(x, y float64, s string, size float64, bold bool, color document.Color, a Align) {
	c.cur.Ops = append(c.cur.Ops, Op{
		Kind: OpText, X: x, Y: y, Text: s, FontSize: size, Bold: bold, TextColor: color, Align: a,
	})
}

func (c *canvas) fillRect(x, y, w, h float64, fill document.Color) {
	c.cur.Ops = append(c.cur.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Fill: &fill})
}

func (c *canvas) strokeRect(x, y, w, h float64, stroke document.Color, width float64) {
	c.cur.Ops = append(c.cur.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Stroke: &stroke, LineWidth: width})
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke document.Color, width float64) {
	c.cur.Ops = append(c.cur.Ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Stroke: &stroke, LineWidth: width})
}

// Layout calcula el programa de dibujo de la factura. Las opciones se completan
// con los valores por defecto y se validan.
func Layout(m *document.Model, opts Options) (*Program, error) {
	if m == nil {
		return nil, fmt.Errorf("pdf: modelo nulo")
	}
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pageW, pageH := opts.PageSize()
	mg := opts.Margins
	contentW := pageW - mg.Left - mg.Right

	c := &canvas{prog: &Program{
		Format:      opts.Format,
		Orientation: opts.Orientation,
		Width:       pageW,
		Height:      pageH,
		Title:       "Invoice-" + m.InvoiceNumber,
	}}
	c.addPage()

	y := mg.Top

	// ── Cabecera + estado ────────────────────────────────────────────────────
	c.text(mg.Left, y+5, m.Title, 36, true, black, AlignLeft)

	pillW := PillWidth(m.StatusLabel)
	pillX := mg.Left + pillOffsetX
	pillY := max(y-8, 0)
	fill := m.StatusColor
	c.cur.Ops = append(c.cur.Ops, Op{
		Kind: OpRoundedRect, X: pillX, Y: pillY, W: pillW, H: pillHeight, Radius: pillRadius, Fill: &fill,
	})
	c.text(pillX+pillW/2, pillY+5, m.StatusLabel, 8, true, white, AlignCenter)

	// ── From (columna derecha) ───────────────────────────────────────────────
	rightX := mg.Left + contentW - rightColumnW
	c.text(rightX, y, "From", 9, false, gray120, AlignLeft)
	fy := y + 6
	c.text(rightX, fy, m.From.Name, 11, true, black, AlignLeft)
	fy += 5
	for _, l := range m.From.AddressLines {
		c.text(rightX, fy, l, 9, false, gray120, AlignLeft)
		fy += 4
	}

	// ── Detalles (columna izquierda) ─────────────────────────────────────────
	dy := y + 25
	for _, f := range m.Details {
		c.text(mg.Left, dy, f.Label, 8, false, gray120, AlignLeft)
		c.text(mg.Left+35, dy, f.Value, 8, false, black, AlignLeft)
		dy += 7
	}

	// ── For ──────────────────────────────────────────────────────────────────
	y += 25
	c.text(rightX, y, "For", 9, false, gray120, AlignLeft)
	c.text(rightX, y+8, m.Customer.Name, 12, true, black, AlignLeft)
	if m.Customer.Address != "" {
		c.text(rightX, y+15, m.Customer.Address, 9, false, gray120, AlignLeft)
	}

	y += 50

	// ── Tabla ────────────────────────────────────────────────────────────────
	c.fillRect(mg.Left, y, contentW, tableHeadHeight, headFill)
	c.strokeRect(mg.Left, y, contentW, tableHeadHeight, headLine, 0.2)
	for _, h := range []struct {
		label string
		dx    float64
	}{{"Item Type", 2}, {"Description", 32}, {"Quantity", 115}, {"Unit Price", 140}, {"Amount", 170}} {
		c.text(mg.Left+h.dx, y+5.5, h.label, 8, true, gray60, AlignLeft)
	}
	y += tableHeadHeight

	bottom := pageH - mg.Bottom
	for i, r := range m.Rows {
		if y+rowHeight > bottom {
			c.addPage()
			y = mg.Top
		}
		if i%2 == 1 {
			c.fillRect(mg.Left, y, contentW, rowHeight, zebraFill)
		}
		c.strokeRect(mg.Left, y, contentW, rowHeight, rowLine, 0.1)

		ty := y + 4.5
		c.text(mg.Left+2, ty, r.Type, 8, false, black, AlignLeft)
		c.text(mg.Left+32, ty, TruncateDescription(r.Description), 8, false, black, AlignLeft)
		c.text(mg.Left+118, ty, r.Quantity, 8, false, black, AlignLeft)
		c.text(mg.Left+145, ty, r.UnitPrice, 8, false, black, AlignLeft)
		c.text(mg.Left+173, ty, r.Amount, 8, false, black, AlignLeft)
		y += rowHeight
	}

	// ── Totales ──────────────────────────────────────────────────────────────
	y += 10
	if y+summaryHeight > bottom {
		c.addPage()
		y = mg.Top + 6
	}
	sx := mg.Left + contentW - summaryWidth
	for _, s := range [][2]string{
		{"Subtotal", m.Summary.Subtotal},
		{m.Summary.TaxLabel, m.Summary.Tax},
	} {
		c.text(sx, y, s[0], 10, false, gray100, AlignLeft)
		c.text(sx+40, y, s[1], 10, false, gray100, AlignLeft)
		y += 6
	}

	y += 5
	c.fillRect(sx-2, y-6, 54, 10, headFill)
	c.text(sx, y, "Amount Due", 12, true, black, AlignLeft)
	c.text(sx+40, y, m.Summary.AmountDue, 12, true, black, AlignLeft)

	y += 15
	c.line(mg.Left, y, mg.Left+contentW, y, footLine, 0.5)

	return c.prog, nil
}
