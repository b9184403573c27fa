package xlsx

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

func sampleQuote() *entity.Quote {
	return &entity.Quote{
		CompanyInfo: entity.CompanyInfo{Name: "프로다", Notes: "입금 후 착수"},
		ClientInfo: entity.QuoteClient{
			ClientInfo: entity.ClientInfo{CompanyName: "ACME", ProjectName: "런칭", QuoteDate: "2025-01-15"},
			ValidUntil: "2025-02-14",
		},
		Services: []entity.ServiceLine{
			{ID: 1, Name: "유튜브", Quantity: 3, Unit: entity.UnitMonth, OriginalPrice: decimal.NewFromInt(800000),
				DiscountType: entity.DiscountPercent, DiscountValue: decimal.NewFromInt(10), DiscountReason: "장기계약",
				UnitPrice: decimal.NewFromInt(720000), Amount: decimal.NewFromInt(2160000)},
			{ID: 2, Name: "=HYPERLINK(\"x\")", Quantity: 1, Unit: entity.UnitPiece, DiscountType: entity.DiscountNone},
		},
		Discount:       decimal.NewFromInt(5),
		DiscountReason: "첫 거래",
		Subtotal:       decimal.NewFromInt(2160000),
		NetAmount:      decimal.NewFromInt(2160000),
		VAT:            decimal.NewFromInt(216000),
		Total:          decimal.NewFromInt(2376000),
	}
}

// readRows abre el xlsx generado y devuelve las filas con valores crudos.
func readRows(t *testing.T, b []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return rows
}

// find devuelve la fila que contiene label en alguna columna.
func find(rows [][]string, label string) []string {
	for _, r := range rows {
		for _, c := range r {
			if c == label {
				return r
			}
		}
	}
	return nil
}

func TestGenerateQuoteSheet(t *testing.T) {
	b, err := NewSheetGenerator().GenerateQuoteSheet(context.Background(), sampleQuote())
	require.NoError(t, err)

	rows := readRows(t, b)
	assert.Equal(t, "견적서", rows[0][0])

	total := find(rows, "총 금액")
	require.NotNil(t, total)
	assert.Equal(t, "2376000", total[7])

	vat := find(rows, "부가세(10%)")
	require.NotNil(t, vat)
	assert.Equal(t, "216000", vat[7])

	line := find(rows, "유튜브")
	require.NotNil(t, line)
	assert.Equal(t, "3", line[3])
	assert.Equal(t, "개월", line[4])
	assert.Equal(t, "720000", line[6])
	assert.Equal(t, "장기계약", line[8])

	assert.NotNil(t, find(rows, "'=HYPERLINK(\"x\")"))
	assert.NotNil(t, find(rows, "5%"))
	assert.NotNil(t, find(rows, "입금 후 착수"))
}

func TestGenerateQuoteSheet_IVAConDecimales(t *testing.T) {
	q := sampleQuote()
	q.VAT = decimal.RequireFromString("1.5")

	b, err := NewSheetGenerator().GenerateQuoteSheet(context.Background(), q)
	require.NoError(t, err)

	vat := find(readRows(t, b), "부가세(10%)")
	require.NotNil(t, vat)
	assert.Equal(t, "1.5", vat[7])
}

func TestSanitizeCell(t *testing.T) {
	assert.Equal(t, "'=1+1", sanitizeCell("=1+1"))
	assert.Equal(t, "'-3", sanitizeCell("-3"))
	assert.Equal(t, "유튜브", sanitizeCell("유튜브"))
	assert.Equal(t, "", sanitizeCell(""))
}
