package invoice

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity cantidad máxima aceptada en una línea.
const MaxQuantity = math.MaxInt32

// CoerceQuantity convierte la entrada del usuario en una cantidad entera >= 1.
// Entradas no numéricas, cero, negativas o mayores que MaxQuantity devuelven 1;
// los decimales se truncan.
func CoerceQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 1 || n > MaxQuantity {
			return 1
		}
		return int(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 || f >= MaxQuantity+1 {
		return 1
	}
	return int(f)
}

// CoercePrice convierte la entrada del usuario en un precio >= 0.
// Entradas no numéricas o negativas devuelven 0.
func CoercePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
