// Package invoice contiene la lógica de cálculo de un borrador de factura:
// líneas, cantidades, precios y totales derivados.
package invoice

import "github.com/shopspring/decimal"

// taxRate tasa fija aplicada a los borradores (10%). No es configurable.
var taxRate = decimal.New(10, -2)

// TaxRate devuelve la tasa fija de impuesto de los borradores.
func TaxRate() decimal.Decimal { return taxRate }

// Totals totales derivados de una lista de líneas. Nunca se persisten.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto y total a partir de las líneas.
// Subtotal = Σ amount (exacto); Impuesto = Subtotal * 10% redondeado a 2 decimales;
// Total = Subtotal + Impuesto. Función pura: mismo input, mismo resultado.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount())
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		TaxAmount:  tax,
		GrandTotal: subtotal.Add(tax),
	}
}
