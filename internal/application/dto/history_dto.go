package dto

import (
	"github.com/jhoicas/Cotizador-api/internal/domain/draft"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// HistorySummary fila del listado de historial (sin el snapshot).
type HistorySummary struct {
	ID          string          `json:"id"`
	ClientName  string          `json:"client_name"`
	ProjectName string          `json:"project_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	QuoteDate   string          `json:"quote_date"`
}

// HistoryListResponse GET /api/history.
type HistoryListResponse struct {
	Items []HistorySummary `json:"items"`
}

// HistoryRecordResponse GET /api/history/:id: snapshot y borrador restaurado para editar.
type HistoryRecordResponse struct {
	ID    string       `json:"id"`
	Quote entity.Quote `json:"quote"`
	Draft draft.Draft  `json:"draft"`
}

// TemplateListResponse listados de plantillas.
type TemplateListResponse struct {
	Items []entity.ServiceTemplate `json:"items"`
}
