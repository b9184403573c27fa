package quoting

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/catalog"
	"github.com/jhoicas/Cotizador-api/internal/domain/draft"
)

// HistoryUseCase consulta y depura el historial y las plantillas.
type HistoryUseCase struct {
	store HistoryStore
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(store HistoryStore) *HistoryUseCase {
	return &HistoryUseCase{store: store}
}

// List resume los registros, más reciente primero.
func (uc *HistoryUseCase) List() *dto.HistoryListResponse {
	records := uc.store.History()
	resp := &dto.HistoryListResponse{Items: make([]dto.HistorySummary, 0, len(records))}
	for _, r := range records {
		resp.Items = append(resp.Items, dto.HistorySummary{
			ID:          r.ID,
			ClientName:  r.ClientName,
			ProjectName: r.ProjectName,
			TotalAmount: r.TotalAmount,
			QuoteDate:   r.QuoteDate,
		})
	}
	return resp
}

// Get devuelve el snapshot y el borrador restaurado. domain.ErrNotFound si no existe.
func (uc *HistoryUseCase) Get(id string) (*dto.HistoryRecordResponse, error) {
	q, err := uc.store.LoadRecord(id)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryRecordResponse{ID: id, Quote: q, Draft: draft.Restore(q)}, nil
}

// Remove quita un registro (idempotente).
func (uc *HistoryUseCase) Remove(ctx context.Context, id string) error {
	return uc.store.RemoveHistoryRecord(ctx, id)
}

// Templates catálogo fijo.
func (uc *HistoryUseCase) Templates() *dto.TemplateListResponse {
	return &dto.TemplateListResponse{Items: catalog.BuiltIn()}
}

// RecentTemplates plantillas usadas recientemente.
func (uc *HistoryUseCase) RecentTemplates() *dto.TemplateListResponse {
	return &dto.TemplateListResponse{Items: uc.store.RecentServices()}
}

// RemoveRecent quita una plantilla reciente por nombre (idempotente).
func (uc *HistoryUseCase) RemoveRecent(ctx context.Context, name string) error {
	return uc.store.RemoveRecentService(ctx, name)
}
