// Package quoting contiene los casos de uso del cotizador: edición de líneas,
// generación de la cotización y consulta del historial.
package quoting

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
	"github.com/jhoicas/Cotizador-api/internal/domain/quote"
)

// GenerateQuoteUseCase arma la cotización y la registra en el historial.
type GenerateQuoteUseCase struct {
	store HistoryStore
	log   zerolog.Logger
}

// NewGenerateQuoteUseCase construye el caso de uso.
func NewGenerateQuoteUseCase(store HistoryStore, log zerolog.Logger) *GenerateQuoteUseCase {
	return &GenerateQuoteUseCase{store: store, log: log.With().Str("usecase", "generate_quote").Logger()}
}

// Generate arma el snapshot y, si es válido, lo registra junto con los servicios recientes.
// Con el borrador sin líneas devuelve *domain.ValidationError y no toca el historial.
func (uc *GenerateQuoteUseCase) Generate(ctx context.Context, in dto.GenerateQuoteRequest) (*dto.GenerateQuoteResponse, error) {
	// Los derivados enviados por el cliente no se toman como verdad.
	lines := make([]entity.ServiceLine, len(in.Services))
	for i, l := range in.Services {
		lines[i] = pricing.Recalculate(l)
	}

	q, err := quote.Assemble(in.Company, in.Client, lines, ClampDiscount(in.Discount), in.DiscountReason)
	if err != nil {
		return nil, err
	}

	rec, err := uc.store.RecordGenerated(ctx, *q)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("record_id", rec.ID).
		Str("client", rec.ClientName).
		Str("project", rec.ProjectName).
		Int("lines", len(q.Services)).
		Str("total", q.Total.String()).
		Msg("cotización generada")

	return &dto.GenerateQuoteResponse{RecordID: rec.ID, Quote: *q}, nil
}

var maxDiscount = decimal.NewFromInt(100)

// ClampDiscount lleva el descuento global a un entero en [0,100], como lo captura el formulario.
func ClampDiscount(v decimal.Decimal) decimal.Decimal {
	v = v.Truncate(0)
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(maxDiscount) {
		return maxDiscount
	}
	return v
}
