package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
)

const fontFamily = "Helvetica"

// GofpdfRenderer serializa un Program a PDF con gofpdf.
type GofpdfRenderer struct {
	creator string
}

// NewGofpdfRenderer construye el renderer; creator se guarda en los metadatos del PDF.
func NewGofpdfRenderer(creator string) *GofpdfRenderer {
	return &GofpdfRenderer{creator: creator}
}

// Render dibuja todas las páginas del programa y devuelve los bytes del PDF.
// Cualquier fallo de gofpdf se devuelve envuelto en domain.ErrRender.
func (r *GofpdfRenderer) Render(ctx context.Context, prog *Program) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if prog == nil || len(prog.Pages) == 0 {
		return nil, fmt.Errorf("%w: programa vacío", domain.ErrRender)
	}

	orientation := "P"
	if prog.Orientation == OrientationLandscape {
		orientation = "L"
	}
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "mm",
		SizeStr:        prog.Format,
	})
	f.SetMargins(0, 0, 0)
	f.SetAutoPageBreak(false, 0)
	f.SetTitle(prog.Title, true)
	if r.creator != "" {
		f.SetCreator(r.creator, true)
	}
	// Las fuentes estándar son cp1252; se traducen los textos UTF-8.
	tr := f.UnicodeTranslatorFromDescriptor("")

	for _, pg := range prog.Pages {
		f.AddPage()
		for _, op := range pg.Ops {
			drawOp(f, tr, op)
		}
		if f.Err() {
			break
		}
	}
	if err := f.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: serializar: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func drawOp(f *gofpdf.Fpdf, tr func(string) string, op Op) {
	switch op.Kind {
	case OpText:
		style := ""
		if op.Bold {
			style = "B"
		}
		f.SetFont(fontFamily, style, op.FontSize)
		f.SetTextColor(op.TextColor.R, op.TextColor.G, op.TextColor.B)
		s := tr(op.Text)
		x := op.X
		switch op.Align {
		case AlignCenter:
			x -= f.GetStringWidth(s) / 2
		case AlignRight:
			x -= f.GetStringWidth(s)
		}
		f.Text(x, op.Y, s)
	case OpRect:
		f.Rect(op.X, op.Y, op.W, op.H, applyPaint(f, op))
	case OpRoundedRect:
		f.RoundedRect(op.X, op.Y, op.W, op.H, op.Radius, "1234", applyPaint(f, op))
	case OpLine:
		applyPaint(f, op)
		f.Line(op.X, op.Y, op.X2, op.Y2)
	}
}

// applyPaint fija colores y grosor y devuelve el estilo gofpdf ("F", "D" o "FD").
func applyPaint(f *gofpdf.Fpdf, op Op) string {
	style := ""
	if op.Fill != nil {
		setFill(f, *op.Fill)
		style += "F"
	}
	if op.Stroke != nil {
		f.SetDrawColor(op.Stroke.R, op.Stroke.G, op.Stroke.B)
		if op.LineWidth > 0 {
			f.SetLineWidth(op.LineWidth)
		}
		style += "D"
	}
	return style
}

func setFill(f *gofpdf.Fpdf, c document.Color) {
	f.SetFillColor(c.R, c.G, c.B)
}
