// Package money formatea importes para los documentos (PDF, impresión, CLI).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el importe con dos decimales, separador de miles y símbolo $.
// Ej: 1234.5 → "$1,234.50"
func Format(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsNegative() {
		return "-$" + group(d.Neg())
	}
	return "$" + group(d)
}

// Plain igual que Format pero sin símbolo de moneda.
func Plain(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsNegative() {
		return "-" + group(d.Neg())
	}
	return group(d)
}

// group agrupa por miles la parte entera de un importe no negativo sin pasar
// por float64: los decimales salen de StringFixed.
func group(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	if n := d.Truncate(0).BigInt(); n.IsInt64() {
		return printer.Sprintf("%d", n.Int64()) + "." + frac
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "." + frac
}
