package quoting

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// HistoryStore puerto hacia el historial (implementado por history.Store).
type HistoryStore interface {
	RecordGenerated(ctx context.Context, q entity.Quote) (entity.HistoryRecord, error)
	History() []entity.HistoryRecord
	RecentServices() []entity.ServiceTemplate
	LoadRecord(id string) (entity.Quote, error)
	RemoveRecentService(ctx context.Context, name string) error
	RemoveHistoryRecord(ctx context.Context, id string) error
}
