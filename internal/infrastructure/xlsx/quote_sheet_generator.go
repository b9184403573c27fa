// Package xlsx exporta una cotización a una hoja de cálculo con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

const sheetName = "견적서"

// Columnas de la tabla de servicios.
var headers = []string{"No", "서비스명", "설명", "수량", "단위", "정가", "단가", "금액(원)", "비고"}

// Formatos numéricos integrados de Excel.
const (
	numFmtInt     = 3 // #,##0
	numFmtDecimal = 4 // #,##0.00
)

// SheetGenerator implementa document.QuoteSheetGenerator.
type SheetGenerator struct{}

// NewSheetGenerator construye el exportador.
func NewSheetGenerator() *SheetGenerator { return &SheetGenerator{} }

// GenerateQuoteSheet escribe el snapshot en una hoja y devuelve los bytes del .xlsx.
// Los montos se copian tal cual del snapshot.
func (g *SheetGenerator) GenerateQuoteSheet(_ context.Context, q *entity.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, styles: st}
	widths := []float64{5, 22, 36, 8, 8, 14, 14, 16, 24}
	for i, width := range widths {
		c, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, c, c, width); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna %s: %w", c, err)
		}
	}

	// ── Encabezado ──────────────────────────────────────────────────────
	last, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.MergeCell(sheetName, "A1", last+"1"); err != nil {
		return nil, fmt.Errorf("xlsx: combinar título: %w", err)
	}
	w.set(1, 1, "견적서", st.title)
	w.set(1, 2, "QUOTATION", st.muted)
	w.set(1, 3, "견적일", st.label)
	w.set(2, 3, q.ClientInfo.QuoteDate, 0)
	w.set(4, 3, "유효기한", st.label)
	w.set(6, 3, q.ClientInfo.ValidUntil, 0)

	// ── Emisor y cliente ────────────────────────────────────────────────
	c := q.CompanyInfo
	w.set(1, 5, "공급자", st.label)
	w.set(2, 5, c.Name, st.bold)
	w.set(2, 6, c.Address, 0)
	w.set(2, 7, fmt.Sprintf("T. %s | E. %s", c.Phone, c.Email), 0)
	w.set(2, 8, "사업자등록번호: "+c.BusinessNumber, 0)

	cl := q.ClientInfo
	w.set(5, 5, "CLIENT", st.label)
	w.set(6, 5, cl.CompanyName, st.bold)
	w.set(6, 6, cl.ContactPerson, 0)
	w.set(6, 7, cl.Email, 0)
	w.set(5, 8, "PROJECT", st.label)
	w.set(6, 8, cl.ProjectName, st.bold)

	row := 10
	for _, notes := range []string{c.Notes, cl.Notes} {
		if notes == "" {
			continue
		}
		w.set(1, row, "참고사항", st.label)
		w.set(2, row, notes, st.wrap)
		row++
	}
	row++

	// ── Tabla de servicios ──────────────────────────────────────────────
	for i, h := range headers {
		w.set(i+1, row, h, st.header)
	}
	row++
	for i, s := range q.Services {
		w.set(1, row, i+1, st.cell)
		w.set(2, row, s.Name, st.cell)
		w.set(3, row, s.Description, st.cell)
		w.set(4, row, s.Quantity, st.cell)
		w.set(5, row, s.Unit, st.cell)
		w.money(6, row, s.OriginalPrice, true)
		w.money(7, row, s.UnitPrice, true)
		w.money(8, row, s.Amount, true)
		note := ""
		if s.HasDiscount() {
			note = s.DiscountReason
		}
		w.set(9, row, note, st.cell)
		row++
	}
	row++

	// ── Totales ─────────────────────────────────────────────────────────
	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"소계", q.Subtotal},
		{"공급가액", q.NetAmount},
		{"부가세(10%)", q.VAT},
		{"총 금액", q.Total},
	}
	for _, t := range totals {
		w.set(7, row, t.label, st.label)
		w.money(8, row, t.value, false)
		row++
	}
	if !q.Discount.IsZero() {
		w.set(7, row, "할인", st.label)
		w.set(8, row, q.Discount.String()+"%", 0)
		w.set(9, row, q.DiscountReason, 0)
	}

	if w.err != nil {
		return nil, fmt.Errorf("xlsx: escribir celdas: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

// ── Escritura ─────────────────────────────────────────────────────────────────

// sheetWriter acumula el primer error de escritura para no cortar el flujo en cada celda.
type sheetWriter struct {
	f      *excelize.File
	styles *styles
	err    error
}

func (w *sheetWriter) set(col, row int, v any, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if s, ok := v.(string); ok {
		v = sanitizeCell(s)
	}
	if err := w.f.SetCellValue(sheetName, cell, v); err != nil {
		w.err = err
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(sheetName, cell, cell, style)
	}
}

// money escribe el monto como número; con decimales usa formato de dos cifras.
func (w *sheetWriter) money(col, row int, d decimal.Decimal, bordered bool) {
	style := w.styles.amount
	if !d.IsInteger() {
		style = w.styles.amountDecimal
	}
	if bordered {
		style = w.styles.amountCell
		if !d.IsInteger() {
			style = w.styles.amountCellDecimal
		}
	}
	w.set(col, row, d.InexactFloat64(), style)
}

// ── Estilos ───────────────────────────────────────────────────────────────────

type styles struct {
	title, muted, label, bold, wrap, header, cell int
	amount, amountDecimal, amountCell, amountCellDecimal int
}

func newStyles(f *excelize.File) (*styles, error) {
	st := &styles{}
	var err error
	mk := func(dst *int, s *excelize.Style) {
		if err == nil {
			*dst, err = f.NewStyle(s)
		}
	}

	mk(&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 18}})
	mk(&st.muted, &excelize.Style{Font: &excelize.Font{Size: 10, Color: "#666666"}})
	mk(&st.label, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 10}})
	mk(&st.bold, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	mk(&st.wrap, &excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	mk(&st.header, &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F5F5F5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	mk(&st.cell, &excelize.Style{Border: thinBorders(), Alignment: &excelize.Alignment{Vertical: "top", WrapText: true}})
	mk(&st.amount, &excelize.Style{NumFmt: numFmtInt})
	mk(&st.amountDecimal, &excelize.Style{NumFmt: numFmtDecimal})
	mk(&st.amountCell, &excelize.Style{NumFmt: numFmtInt, Border: thinBorders()})
	mk(&st.amountCellDecimal, &excelize.Style{NumFmt: numFmtDecimal, Border: thinBorders()})

	if err != nil {
		return nil, fmt.Errorf("xlsx: crear estilo: %w", err)
	}
	return st, nil
}

// sanitizeCell evita que un texto que empieza con =, +, -, @ se interprete como fórmula.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#DDDDDD", Style: 1}
	}
	return borders
}
