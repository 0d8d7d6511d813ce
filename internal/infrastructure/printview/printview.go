// Package printview genera la versión imprimible (HTML) de una factura para el
// diálogo de impresión del navegador.
package printview

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/jhoicas/invoice-system/internal/domain"
	"github.com/jhoicas/invoice-system/internal/domain/document"
)

// DefaultTitleRestore espera antes de restaurar el título del documento; el
// navegador no avisa cuando se cierra el diálogo de impresión.
const DefaultTitleRestore = time.Second

// Options opciones de la vista de impresión.
type Options struct {
	// AutoPrint abre el diálogo de impresión al cargar la página.
	AutoPrint bool
	// TitleRestore retardo para restaurar el título original tras imprimir.
	TitleRestore time.Duration
}

// Renderer renderiza el modelo de factura a HTML imprimible.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer compila la plantilla.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{"isOdd": func(i int) bool { return i%2 == 1 }}
	return &Renderer{tmpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceTemplate))}
}

type viewData struct {
	*document.Model
	PrintTitle string
	RestoreMs  int64
	AutoPrint  bool
	PillClass  string
}

// PrintTitle título que toma el documento mientras se imprime.
func PrintTitle(invoiceNumber string) string {
	return "Invoice-" + invoiceNumber
}

// Render devuelve el documento HTML. Las descripciones no se recortan.
func (r *Renderer) Render(ctx context.Context, m *document.Model, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: modelo nulo", domain.ErrRender)
	}
	restore := opts.TitleRestore
	if restore <= 0 {
		restore = DefaultTitleRestore
	}
	pill := "bg-red-500"
	if m.Paid {
		pill = "bg-green-500"
	}

	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, viewData{
		Model:      m,
		PrintTitle: PrintTitle(m.InvoiceNumber),
		RestoreMs:  restore.Milliseconds(),
		AutoPrint:  opts.AutoPrint,
		PillClass:  pill,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: plantilla de impresión: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Invoice</title>
<style>
  @page { size: A4; margin: 10mm; }
  body { font-family: Helvetica, Arial, sans-serif; color: #000; margin: 0; }
  .sheet { background: #fff; padding: 2rem; max-width: 56rem; margin: 0 auto; }
  .header, .info { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 2rem; }
  .title { display: flex; align-items: center; gap: 1rem; }
  .title h1 { font-size: 2.25rem; font-weight: bold; margin: 0; }
  .pill { padding: .25rem .75rem; font-size: .75rem; font-weight: bold; color: #fff; border-radius: .25rem; }
  .party { display: flex; gap: 1rem; max-width: 230px; }
  .party .label { font-size: .875rem; font-weight: bold; }
  .party .block { border-left: 2px solid #6b7280; padding-left: 1rem; }
  .party h2, .party h3 { font-size: 1.125rem; font-weight: bold; margin: 0 0 .25rem; }
  .party p, .details div { font-size: .875rem; margin: 0; }
  .details span.k { display: inline-block; width: 6rem; }
  .details span.v { font-weight: 500; border-left: 2px solid #d1d5db; padding-left: .5rem; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 2rem; }
  th, td { border: 1px solid #d1d5db; padding: .5rem .75rem; font-size: .875rem; }
  th { font-weight: 600; color: #374151; text-align: left; }
  .c { text-align: center; } .r { text-align: right; }
  .summary { display: flex; justify-content: flex-end; }
  .summary .box { width: 16rem; }
  .summary .line { display: flex; justify-content: space-between; color: #4b5563; margin-bottom: .5rem; }
  .summary .due { display: flex; justify-content: space-between; font-size: 1.125rem; font-weight: bold; padding: .5rem .75rem; }
  .bg-gray-100 { background-color: #f3f4f6; }
  .bg-gray-50 { background-color: #f9fafb; }
  .bg-green-500 { background-color: #10b981; }
  .bg-red-500 { background-color: #ef4444; }
  @media print {
    body { -webkit-print-color-adjust: exact; print-color-adjust: exact; color-adjust: exact; }
    .bg-gray-100 { background-color: #f3f4f6 !important; }
    .bg-gray-50 { background-color: #f9fafb !important; }
    .bg-green-500 { background-color: #10b981 !important; }
    .bg-red-500 { background-color: #ef4444 !important; }
    table, th, td { border: 1px solid #d1d5db !important; }
  }
</style>
</head>
<body>
<div class="sheet">
  <div class="header">
    <div class="title">
      <h1>{{.Title}}</h1>
      <span class="pill {{.PillClass}}">{{.StatusLabel}}</span>
    </div>
    <div class="party">
      <p class="label">From</p>
      <div class="block">
        <h2>{{.From.Name}}</h2>
        {{range .From.AddressLines}}<p>{{.}}</p>
        {{end}}
      </div>
    </div>
  </div>

  <div class="info">
    <div class="details">
      {{range .Details}}<div><span class="k">{{.Label}}</span><span class="v">{{.Value}}</span></div>
      {{end}}
    </div>
    <div class="party">
      <p class="label">For</p>
      <div class="block">
        <h3>{{.Customer.Name}}</h3>
        {{if .Customer.Address}}<p>{{.Customer.Address}}</p>{{end}}
      </div>
    </div>
  </div>

  <table>
    <thead>
      <tr class="bg-gray-100">
        <th>Item Type</th><th>Description</th><th class="c">Quantity</th><th class="r">Unit Price</th><th class="r">Amount</th>
      </tr>
    </thead>
    <tbody>
      {{range $i, $r := .Rows}}<tr{{if isOdd $i}} class="bg-gray-50"{{end}}>
        <td>{{$r.Type}}</td><td>{{$r.Description}}</td><td class="c">{{$r.Quantity}}</td><td class="r">{{$r.UnitPrice}}</td><td class="r">{{$r.Amount}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="summary">
    <div class="box">
      <div class="line"><span>Subtotal</span><span>{{.Summary.Subtotal}}</span></div>
      <div class="line"><span>{{.Summary.TaxLabel}}</span><span>{{.Summary.Tax}}</span></div>
      <div class="due bg-gray-100"><span>Amount Due</span><span>{{.Summary.AmountDue}}</span></div>
    </div>
  </div>
</div>
{{if .AutoPrint}}<script>
(function () {
  var original = document.title;
  window.addEventListener("load", function () {
    document.title = {{.PrintTitle}};
    window.print();
    setTimeout(function () { document.title = original; }, {{.RestoreMs}});
  });
})();
</script>{{end}}
</body>
</html>
`
