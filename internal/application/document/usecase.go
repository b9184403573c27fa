// Package document genera los documentos descargables (PDF y hoja de cálculo)
// a partir de un snapshot de cotización.
package document

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// QuotePDFGenerator renderiza la cotización imprimible.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q *entity.Quote) ([]byte, error)
}

// QuoteSheetGenerator exporta la cotización como hoja de cálculo.
type QuoteSheetGenerator interface {
	GenerateQuoteSheet(ctx context.Context, q *entity.Quote) ([]byte, error)
}

// RecordSource fuente de snapshots del historial.
type RecordSource interface {
	LoadRecord(id string) (entity.Quote, error)
}

// UseCase arma los documentos de una cotización guardada o enviada por la interfaz.
// Los renderizadores solo formatean: no recalculan montos.
type UseCase struct {
	records RecordSource
	pdf     QuotePDFGenerator
	sheet   QuoteSheetGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(records RecordSource, pdf QuotePDFGenerator, sheet QuoteSheetGenerator) *UseCase {
	return &UseCase{records: records, pdf: pdf, sheet: sheet}
}

// PDFFromQuote renderiza un snapshot recibido.
func (uc *UseCase) PDFFromQuote(ctx context.Context, q entity.Quote) (*dto.DocumentFile, error) {
	content, err := uc.pdf.GenerateQuotePDF(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("documento: generar pdf: %w", err)
	}
	return &dto.DocumentFile{Filename: Filename(q, "pdf"), ContentType: ContentTypePDF, Content: content}, nil
}

// PDFByRecord renderiza el snapshot guardado con id. domain.ErrNotFound si no existe.
func (uc *UseCase) PDFByRecord(ctx context.Context, id string) (*dto.DocumentFile, error) {
	q, err := uc.records.LoadRecord(id)
	if err != nil {
		return nil, err
	}
	return uc.PDFFromQuote(ctx, q)
}

// SheetByRecord exporta el snapshot guardado con id a XLSX.
func (uc *UseCase) SheetByRecord(ctx context.Context, id string) (*dto.DocumentFile, error) {
	q, err := uc.records.LoadRecord(id)
	if err != nil {
		return nil, err
	}
	content, err := uc.sheet.GenerateQuoteSheet(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("documento: generar xlsx: %w", err)
	}
	return &dto.DocumentFile{Filename: Filename(q, "xlsx"), ContentType: ContentTypeXLSX, Content: content}, nil
}

var unsafeFilename = regexp.MustCompile(`[\\/:*?"<>|\s]+`)

// Filename nombre del archivo descargado: 견적서_<cliente>_<fecha>.<ext>.
func Filename(q entity.Quote, ext string) string {
	parts := []string{"견적서"}
	if name := strings.TrimSpace(q.ClientInfo.CompanyName); name != "" {
		parts = append(parts, unsafeFilename.ReplaceAllString(name, "_"))
	}
	if q.ClientInfo.QuoteDate != "" {
		parts = append(parts, q.ClientInfo.QuoteDate)
	}
	return strings.Join(parts, "_") + "." + ext
}
