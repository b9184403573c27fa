// Package pricing calcula el precio unitario y el monto de una línea de servicio.
package pricing

import (
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateLinePrice implementa el precio de una línea (servicio de dominio, sin estado).
//
//	none / desconocido → PrecioUnit = PrecioOriginal
//	amount             → PrecioUnit = max(0, PrecioOriginal - Valor)
//	percent            → PrecioUnit = PrecioOriginal * (1 - Valor/100)
//	free               → PrecioUnit = 0
//
// PrecioUnit se redondea a entero y Monto = redondeo(PrecioUnit * Cantidad).
// El rango [0,100] del porcentaje lo valida quien llama; aquí pasa tal cual.
func CalculateLinePrice(originalPrice decimal.Decimal, quantity int, discountType entity.DiscountType, discountValue decimal.Decimal) (unitPrice, amount decimal.Decimal) {
	switch discountType {
	case entity.DiscountAmount:
		unitPrice = decimal.Max(decimal.Zero, originalPrice.Sub(discountValue))
	case entity.DiscountPercent:
		unitPrice = originalPrice.Mul(decimal.NewFromInt(1).Sub(discountValue.Div(hundred)))
	case entity.DiscountFree:
		unitPrice = decimal.Zero
	default:
		unitPrice = originalPrice
	}
	unitPrice = unitPrice.Round(0)
	amount = unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(0)
	return unitPrice, amount
}

// Recalculate devuelve una copia de la línea con UnitPrice y Amount recalculados.
func Recalculate(line entity.ServiceLine) entity.ServiceLine {
	line.UnitPrice, line.Amount = CalculateLinePrice(line.OriginalPrice, line.Quantity, line.DiscountType, line.DiscountValue)
	return line
}
