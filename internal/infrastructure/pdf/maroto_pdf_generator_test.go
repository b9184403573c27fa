package pdf

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func sampleQuote() *entity.Quote {
	return &entity.Quote{
		CompanyInfo: entity.CompanyInfo{Name: "Proda", Address: "Seoul", Phone: "02-000-0000", Email: "hi@proda.kr", BusinessNumber: "123-45-67890", Notes: "line 1\nline 2"},
		ClientInfo: entity.QuoteClient{
			ClientInfo: entity.ClientInfo{CompanyName: "ACME", ContactPerson: "Kim", ProjectName: "Launch", QuoteDate: "2025-01-15"},
			ValidUntil: "2025-02-14",
		},
		Services: []entity.ServiceLine{
			{ID: 1, Name: "YouTube", Description: "channel", Quantity: 3, Unit: entity.UnitMonth,
				OriginalPrice: decimal.NewFromInt(800000), DiscountType: entity.DiscountPercent, DiscountValue: decimal.NewFromInt(10),
				DiscountReason: "launch", UnitPrice: decimal.NewFromInt(720000), Amount: decimal.NewFromInt(2160000)},
			{ID: 2, Name: "Blog", Quantity: 1, Unit: entity.UnitPiece, DiscountType: entity.DiscountNone,
				OriginalPrice: decimal.NewFromInt(100), UnitPrice: decimal.NewFromInt(100), Amount: decimal.NewFromInt(100)},
		},
		Subtotal:  decimal.NewFromInt(2160100),
		NetAmount: decimal.NewFromInt(2160100),
		VAT:       decimal.NewFromInt(216010),
		Total:     decimal.NewFromInt(2376110),
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	g, err := NewMarotoPDFGenerator("")
	require.NoError(t, err)

	b, err := g.GenerateQuotePDF(context.Background(), sampleQuote())
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateQuotePDF_SinLineasNiNotas(t *testing.T) {
	g, err := NewMarotoPDFGenerator("")
	require.NoError(t, err)

	q := sampleQuote()
	q.Services = nil
	q.CompanyInfo.Notes = ""

	b, err := g.GenerateQuotePDF(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestNewMarotoPDFGenerator_FuenteInexistente(t *testing.T) {
	_, err := NewMarotoPDFGenerator("/no/existe/font.ttf")
	assert.Error(t, err)
}

func TestNotesRows(t *testing.T) {
	assert.Nil(t, notesRows("   "))
	// título + 2 líneas + separador
	assert.Len(t, notesRows("a\nb"), 4)
}
