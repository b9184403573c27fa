package entity

import "github.com/shopspring/decimal"

// Textos usados cuando el cliente o el proyecto vienen vacíos.
const (
	PlaceholderClientName  = "고객사명 없음"
	PlaceholderProjectName = "프로젝트명 없음"
)

// HistoryRecord referencia a una cotización pasada. ClientName, ProjectName,
// TotalAmount y QuoteDate están desnormalizados para listar sin leer el snapshot.
type HistoryRecord struct {
	ID          string          `json:"id"`
	ClientName  string          `json:"clientName"`
	ProjectName string          `json:"projectName"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	QuoteDate   string          `json:"quoteDate"`
	Quote       Quote           `json:"previewData"`
}

// SameIdentity compara la identidad natural (cliente, proyecto, fecha).
func (r HistoryRecord) SameIdentity(o HistoryRecord) bool {
	return r.ClientName == o.ClientName && r.ProjectName == o.ProjectName && r.QuoteDate == o.QuoteDate
}
