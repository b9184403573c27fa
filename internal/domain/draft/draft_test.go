package draft_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/Cotizador-api/internal/domain/draft"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/pricing"
	"github.com/jhoicas/Cotizador-api/internal/domain/quote"
)

func names(lines []entity.ServiceLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Name
	}
	return out
}

func TestNew_FechaDeHoy(t *testing.T) {
	d := draft.New(entity.CompanyInfo{Name: "Proda"}, time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-03-09", d.Client.QuoteDate)
	assert.Equal(t, "Proda", d.Company.Name)
	assert.Empty(t, d.Services)
}

func TestAddLine_IDsMonotonicos(t *testing.T) {
	d := draft.Draft{}
	d = d.AddLine().AddLine()
	require.Len(t, d.Services, 2)
	assert.Equal(t, 1, d.Services[0].ID)
	assert.Equal(t, 2, d.Services[1].ID)
	assert.Equal(t, 1, d.Services[0].Quantity)
	assert.Equal(t, entity.UnitMonth, d.Services[0].Unit)
	assert.Equal(t, entity.DiscountNone, d.Services[0].DiscountType)

	// Tras borrar la última, el siguiente ID es max+1 sobre las restantes.
	d = d.RemoveLine(2).AddLine()
	assert.Equal(t, []int{1, 2}, []int{d.Services[0].ID, d.Services[1].ID})
	d = d.RemoveLine(1).AddLine()
	assert.Equal(t, 3, d.Services[1].ID)
}

func TestAddFromTemplate(t *testing.T) {
	tpl := catalog.BuiltIn()[5] // 영상제작
	d := draft.Draft{}.AddFromTemplate(tpl)
	require.Len(t, d.Services, 1)
	line := d.Services[0]
	assert.Equal(t, tpl.Name, line.Name)
	assert.Equal(t, entity.UnitPiece, line.Unit)
	assert.True(t, tpl.OriginalPrice.Equal(line.UnitPrice))
	assert.True(t, tpl.OriginalPrice.Equal(line.Amount))
}

func TestUpdateLine(t *testing.T) {
	d := draft.Draft{}.AddFromTemplate(catalog.BuiltIn()[0])
	original := d

	d, err := d.UpdateLine(1, pricing.FieldQuantity, "2")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1600000).Equal(d.Services[0].Amount))
	assert.Equal(t, 1, original.Services[0].Quantity, "el borrador original no cambia")

	_, err = d.UpdateLine(99, pricing.FieldName, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveLine_Idempotente(t *testing.T) {
	d := draft.Draft{}.AddLine().AddLine()
	d = d.RemoveLine(1)
	d = d.RemoveLine(1)
	require.Len(t, d.Services, 1)
	assert.Equal(t, 2, d.Services[0].ID)
}

func TestMoveLine(t *testing.T) {
	abc := []entity.ServiceLine{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"primero al final", 0, 2, []string{"B", "C", "A"}},
		{"último al inicio", 2, 0, []string{"C", "A", "B"}},
		{"medio hacia abajo", 1, 2, []string{"A", "C", "B"}},
		{"misma posición", 1, 1, []string{"A", "B", "C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := draft.MoveLine(abc, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
			assert.Equal(t, []string{"A", "B", "C"}, names(abc), "la entrada no se modifica")
		})
	}

	_, err := draft.MoveLine(abc, 3, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = draft.MoveLine(abc, 0, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestore_DesdeSnapshot(t *testing.T) {
	d := draft.Draft{
		Company:        entity.CompanyInfo{Name: "Proda"},
		Client:         entity.ClientInfo{CompanyName: "ACME", QuoteDate: "2025-01-15"},
		Discount:       decimal.NewFromInt(5),
		DiscountReason: "promo",
	}.AddFromTemplate(catalog.BuiltIn()[0])

	q, err := quote.Assemble(d.Company, d.Client, d.Services, d.Discount, d.DiscountReason)
	require.NoError(t, err)

	restored := draft.Restore(*q)
	assert.Equal(t, d.Client, restored.Client)
	assert.Equal(t, d.Company, restored.Company)
	assert.Equal(t, d.Services, restored.Services)
	assert.True(t, d.Discount.Equal(restored.Discount))
	assert.Equal(t, "promo", restored.DiscountReason)
}
