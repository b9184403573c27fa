package entity

import "github.com/shopspring/decimal"

// Quote snapshot inmutable de una cotización generada.
// Solo lo construye quote.Assemble; los renderizadores formatean estos valores sin recalcular.
type Quote struct {
	CompanyInfo    CompanyInfo     `json:"companyInfo"`
	ClientInfo     QuoteClient     `json:"clientInfo"`
	Services       []ServiceLine   `json:"services"`
	Discount       decimal.Decimal `json:"discount"` // % sobre el total, solo informativo
	DiscountReason string          `json:"discountReason"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	NetAmount      decimal.Decimal `json:"netAmount"`
	VAT            decimal.Decimal `json:"vat"`
	Total          decimal.Decimal `json:"total"`
}

// Clone devuelve una copia independiente (las líneas no se comparten).
func (q Quote) Clone() Quote {
	out := q
	out.Services = append([]ServiceLine(nil), q.Services...)
	return out
}
