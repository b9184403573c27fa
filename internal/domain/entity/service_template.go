package entity

import "github.com/shopspring/decimal"

// ServiceTemplate semilla reutilizable para crear una línea nueva.
type ServiceTemplate struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
}
