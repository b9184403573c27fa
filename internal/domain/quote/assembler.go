// Package quote arma el snapshot inmutable de una cotización.
package quote

import (
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ValidityDays días de vigencia contados desde la fecha de la cotización.
const ValidityDays = 30

// TaxRate IVA (부가세) fijo.
var TaxRate = decimal.RequireFromString("0.1")

// Assemble construye la cotización a partir de las líneas ya calculadas.
//
//	Subtotal = Σ Amount
//	Neto     = Subtotal (el descuento global solo se muestra, no se resta)
//	IVA      = Neto * 0.10, sin redondear
//	Total    = Neto + IVA
//
// Sin líneas devuelve *domain.ValidationError y no produce cotización.
func Assemble(
	company entity.CompanyInfo,
	client entity.ClientInfo,
	lines []entity.ServiceLine,
	discountPct decimal.Decimal,
	discountReason string,
) (*entity.Quote, error) {
	if len(lines) == 0 {
		return nil, &domain.ValidationError{Field: "services", Message: "agregue al menos un servicio antes de generar la cotización"}
	}

	services := append([]entity.ServiceLine(nil), lines...)
	subtotal := decimal.Zero
	for _, s := range services {
		subtotal = subtotal.Add(s.Amount)
	}
	netAmount := subtotal
	vat := netAmount.Mul(TaxRate)

	return &entity.Quote{
		CompanyInfo: company,
		ClientInfo: entity.QuoteClient{
			ClientInfo: client,
			ValidUntil: ValidUntil(client.QuoteDate),
		},
		Services:       services,
		Discount:       discountPct,
		DiscountReason: discountReason,
		Subtotal:       subtotal,
		NetAmount:      netAmount,
		VAT:            vat,
		Total:          netAmount.Add(vat),
	}, nil
}

// ValidUntil devuelve quoteDate + 30 días con el mismo formato YYYY-MM-DD.
// Una fecha ilegible produce "" (la cotización se arma igual).
func ValidUntil(quoteDate string) string {
	t, err := time.Parse(entity.DateLayout, quoteDate)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, ValidityDays).Format(entity.DateLayout)
}
