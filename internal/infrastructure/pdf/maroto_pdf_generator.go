// Package pdf genera el documento imprimible de una cotización (견적서).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  견적서 / QUOTATION            │  견적일 / 유효기한           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: nombre, dirección, T./E., 사업자등록번호            │
//	│  참고사항 del emisor (si hay)                                │
//	│  CLIENT                        │  PROJECT                    │
//	│  참고사항 del cliente (si hay)                               │
//	│  TABLA: 서비스명 | 수량 | 단가 | 금액(원)                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: 소계 / 공급가액 / 부가세(10%) / 총 금액             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	marotoentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorBlack = &props.Color{Red: 0, Green: 0, Blue: 0}
	colorGray  = &props.Color{Red: 102, Green: 102, Blue: 102}
	colorLight = &props.Color{Red: 153, Green: 153, Blue: 153}
	colorGreen = &props.Color{Red: 5, Green: 150, Blue: 105}
)

// hangulFamily nombre con el que se registra la fuente TTF configurada.
const hangulFamily = "hangul"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa document.QuotePDFGenerator usando Maroto v2.
// Las fuentes núcleo de PDF no tienen glifos Hangul: para un documento legible
// en coreano se configura una fuente TTF (PDF_FONT_PATH).
type MarotoPDFGenerator struct {
	family string
	fonts  []*marotoentity.CustomFont
}

// NewMarotoPDFGenerator construye el generador. Con fontPath vacío usa helvetica.
func NewMarotoPDFGenerator(fontPath string) (*MarotoPDFGenerator, error) {
	if fontPath == "" {
		return &MarotoPDFGenerator{family: "helvetica"}, nil
	}
	fonts, err := repository.New().
		AddUTF8Font(hangulFamily, fontstyle.Normal, fontPath).
		AddUTF8Font(hangulFamily, fontstyle.Bold, fontPath).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuente %s: %w", fontPath, err)
	}
	return &MarotoPDFGenerator{family: hangulFamily, fonts: fonts}, nil
}

// GenerateQuotePDF genera el PDF y devuelve sus bytes. Solo formatea los montos del snapshot.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, q *entity.Quote) ([]byte, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: g.family, Size: 9}).
		WithTitle("견적서 - "+nonEmpty(q.ClientInfo.CompanyName, q.CompanyInfo.Name), true).
		WithAuthor(q.CompanyInfo.Name, true)
	if len(g.fonts) > 0 {
		b = b.WithCustomFonts(g.fonts)
	}

	m := maroto.New(b.Build())

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.6}))
	m.AddRows(row.New(4))
	m.AddRows(companyRows(q.CompanyInfo)...)
	m.AddRows(notesRows(q.CompanyInfo.Notes)...)
	m.AddRows(clientRows(q.ClientInfo)...)
	m.AddRows(notesRows(q.ClientInfo.Notes)...)

	m.AddRows(sectionTitleRow("SERVICES"))
	m.AddRows(tableHeaderRow())
	for _, s := range q.Services {
		m.AddRows(serviceRow(s))
		m.AddRows(line.NewRow(1, props.Line{Color: colorLight, Thickness: 0.2}))
	}

	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(2, props.Line{Color: colorBlack, Thickness: 0.6}))
	m.AddRows(totalsRows(q)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fechas (der).
func headerRow(q *entity.Quote) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("견적서", props.Text{Style: fontstyle.Bold, Size: 22, Top: 1}),
			text.New("QUOTATION", props.Text{Size: 9, Top: 13, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("견적일: "+q.ClientInfo.QuoteDate, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("유효기한: "+q.ClientInfo.ValidUntil, props.Text{
				Size: 9, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// companyRows: bloque del emisor.
func companyRows(c entity.CompanyInfo) []core.Row {
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 13, Top: 1}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(c.Address, props.Text{Size: 9, Color: colorGray}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("T. %s | E. %s", c.Phone, c.Email), props.Text{Size: 9, Color: colorGray}),
		)),
		row.New(7).Add(col.New(12).Add(
			text.New("사업자등록번호: "+c.BusinessNumber, props.Text{Size: 9, Color: colorGray}),
		)),
	}
}

// notesRows: recuadro 참고사항; sin notas no agrega filas.
func notesRows(notes string) []core.Row {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil
	}
	rows := []core.Row{sectionTitleRow("참고사항")}
	for _, l := range strings.Split(notes, "\n") {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 9, Left: 2}),
		)))
	}
	return append(rows, row.New(4))
}

// clientRows: CLIENT (izq) y PROJECT (der).
func clientRows(c entity.QuoteClient) []core.Row {
	return []core.Row{
		row.New(7).Add(
			col.New(6).Add(text.New("CLIENT", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(6).Add(text.New("PROJECT", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
		),
		line.NewRow(1, props.Line{Color: colorLight, Thickness: 0.2}),
		row.New(16).Add(
			col.New(6).Add(
				text.New(c.CompanyName, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
				text.New(c.ContactPerson, props.Text{Size: 9, Top: 6}),
				text.New(c.Email, props.Text{Size: 9, Top: 11}),
			),
			col.New(6).Add(
				text.New(c.ProjectName, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			),
		),
	}
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
	))
}

// tableHeaderRow: cabecera de la tabla de servicios.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("서비스명", 6),
		h("수량", 2),
		h("단가", 2),
		h("금액(원)", 2),
	)
}

// serviceRow: nombre, descripción y motivo del descuento; con descuento muestra
// el precio original en gris sobre el precio final.
func serviceRow(s entity.ServiceLine) core.Row {
	name := col.New(6).Add(
		text.New(s.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1}),
		text.New(s.Description, props.Text{Size: 8, Top: 6, Left: 1, Color: colorGray}),
	)
	if s.HasDiscount() && s.DiscountReason != "" {
		name.Add(text.New("※ "+s.DiscountReason, props.Text{Size: 8, Top: 11, Left: 1, Color: colorGreen}))
	}

	price := col.New(2)
	if s.HasDiscount() {
		price.Add(
			text.New(money.FormatNumber(s.OriginalPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorLight}),
			text.New(money.FormatNumber(s.UnitPrice), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 6, Right: 1, Color: colorGreen}),
		)
	} else {
		price.Add(text.New(money.FormatNumber(s.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}))
	}

	return row.New(16).Add(
		name,
		col.New(2).Add(text.New(strconv.Itoa(s.Quantity)+s.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		price,
		col.New(2).Add(text.New(money.FormatNumber(s.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(q *entity.Quote) []core.Row {
	r := func(label, value string, final bool) core.Row {
		p := props.Text{Size: 9, Top: 1}
		h := 6.0
		if final {
			p = props.Text{Style: fontstyle.Bold, Size: 12, Top: 2}
			h = 9
		}
		lp, vp := p, p
		vp.Align = align.Right
		return row.New(h).Add(
			col.New(6),
			col.New(3).Add(text.New(label, lp)),
			col.New(3).Add(text.New(value, vp)),
		)
	}
	return []core.Row{
		r("소계", money.FormatNumber(q.Subtotal), false),
		r("공급가액", money.FormatNumber(q.NetAmount), false),
		r("부가세(10%)", money.FormatNumber(q.VAT), false),
		r("총 금액", money.FormatNumber(q.Total), true),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
