package pdf

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/invoice-system/internal/domain"
)

// Formatos y orientaciones soportados.
const (
	FormatA4             = "a4"
	FormatLetter         = "letter"
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"

	DefaultMarginMM = 20.0
	DefaultQuality  = 1.0
	maxQuality      = 4.0
)

// Margins márgenes en milímetros.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Options opciones de exportación PDF configurables por quien llama.
type Options struct {
	Filename    string
	Format      string
	Orientation string
	// Quality escala de renderizado; se valida y se registra, pero no afecta
	// a la salida vectorial.
	Quality float64
	Margins Margins
}

// DefaultOptions a4, vertical, calidad 1.0 y 20 mm en cada margen.
func DefaultOptions() Options {
	return Options{
		Format:      FormatA4,
		Orientation: OrientationPortrait,
		Quality:     DefaultQuality,
		Margins:     UniformMargins(DefaultMarginMM),
	}
}

// UniformMargins mismo margen en los cuatro lados.
func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

// WithDefaults completa los campos vacíos con los valores por defecto.
// Los márgenes se consideran vacíos solo si los cuatro son cero.
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	o.Format = strings.ToLower(strings.TrimSpace(o.Format))
	o.Orientation = strings.ToLower(strings.TrimSpace(o.Orientation))
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Orientation == "" {
		o.Orientation = def.Orientation
	}
	if o.Quality == 0 {
		o.Quality = def.Quality
	}
	if o.Margins == (Margins{}) {
		o.Margins = def.Margins
	}
	return o
}

// Validate verifica formato, orientación, calidad y márgenes.
func (o Options) Validate() error {
	if o.Format != FormatA4 && o.Format != FormatLetter {
		return fmt.Errorf("%w: formato %q no soportado (a4|letter)", domain.ErrInvalidInput, o.Format)
	}
	if o.Orientation != OrientationPortrait && o.Orientation != OrientationLandscape {
		return fmt.Errorf("%w: orientación %q no soportada (portrait|landscape)", domain.ErrInvalidInput, o.Orientation)
	}
	if o.Quality <= 0 || o.Quality > maxQuality {
		return fmt.Errorf("%w: calidad %.2f fuera de rango (0, %.0f]", domain.ErrInvalidInput, o.Quality, maxQuality)
	}
	m := o.Margins
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("%w: márgenes negativos", domain.ErrInvalidInput)
	}
	w, h := o.PageSize()
	if m.Left+m.Right >= w/2 || m.Top+m.Bottom >= h/2 {
		return fmt.Errorf("%w: márgenes demasiado grandes para la página", domain.ErrInvalidInput)
	}
	return nil
}

// PageSize ancho y alto de la página en milímetros según formato y orientación.
func (o Options) PageSize() (w, h float64) {
	w, h = 210, 297
	if o.Format == FormatLetter {
		w, h = 215.9, 279.4
	}
	if o.Orientation == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}

// DefaultFilename invoice-<número>-<YYYY-MM-DD>.pdf
func DefaultFilename(invoiceNumber string, now time.Time) string {
	return fmt.Sprintf("invoice-%s-%s.pdf", invoiceNumber, now.Format("2006-01-02"))
}

// SanitizeFilename limpia el nombre de archivo indicado por quien llama: se queda
// con el último segmento de ruta, quita comillas y caracteres de control y
// garantiza la extensión .pdf. Devuelve "" si no queda nada útil.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '\'' || r == '`' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.Trim(name, " .")
	if name == "" || strings.EqualFold(name, "pdf") {
		return ""
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
