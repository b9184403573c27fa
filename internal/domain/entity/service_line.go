package entity

import "github.com/shopspring/decimal"

// DiscountType tipo de descuento por línea.
type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountAmount  DiscountType = "amount"  // monto fijo restado al precio unitario
	DiscountPercent DiscountType = "percent" // porcentaje sobre el precio unitario
	DiscountFree    DiscountType = "free"    // servicio sin costo
)

// Unidades usadas por las líneas.
const (
	UnitMonth = "개월"
	UnitPiece = "개"
)

// ServiceLine representa una línea de servicio dentro de una cotización.
// UnitPrice y Amount son derivados de (OriginalPrice, Quantity, DiscountType, DiscountValue)
// y solo se asignan desde pricing.
type ServiceLine struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	Unit           string          `json:"unit"`
	OriginalPrice  decimal.Decimal `json:"originalPrice"`
	DiscountType   DiscountType    `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"` // solo aplica a amount/percent
	DiscountReason string          `json:"discountReason"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Amount         decimal.Decimal `json:"amount"`
}

// HasDiscount indica si la línea lleva algún descuento (se muestra tachado el precio original).
func (l ServiceLine) HasDiscount() bool {
	return l.DiscountType != "" && l.DiscountType != DiscountNone
}
