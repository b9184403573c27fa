package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación de HistoryRepository. El snapshot va en JSONB;
// los campos del listado quedan en columnas propias.
type HistoryRepo struct {
	q  Querier
	tx *TxRunner
}

// NewHistoryRepository construye el adaptador. q se usa para lecturas y tx para reemplazar las listas.
func NewHistoryRepository(q Querier, tx *TxRunner) *HistoryRepo {
	return &HistoryRepo{q: q, tx: tx}
}

// historyRow fila de quote_history antes de decodificar el snapshot.
type historyRow struct {
	ID          string
	ClientName  string
	ProjectName string
	TotalAmount decimal.Decimal
	QuoteDate   string
	Snapshot    []byte
}

// Load lee ambas listas en orden. Un snapshot ilegible descarta la colección de historial.
func (r *HistoryRepo) Load(ctx context.Context) ([]entity.ServiceTemplate, []entity.HistoryRecord, error) {
	recent, err := r.loadRecent(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, client_name, project_name, total_amount, quote_date, snapshot
		FROM quote_history ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("query quote_history: %w", err)
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (historyRow, error) {
		var h historyRow
		err := row.Scan(&h.ID, &h.ClientName, &h.ProjectName, &h.TotalAmount, &h.QuoteDate, &h.Snapshot)
		return h, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan quote_history: %w", err)
	}

	history, err := decodeHistory(raw)
	if err != nil {
		return recent, nil, err
	}
	return recent, history, nil
}

func (r *HistoryRepo) loadRecent(ctx context.Context) ([]entity.ServiceTemplate, error) {
	rows, err := r.q.Query(ctx, `
		SELECT name, description, original_price
		FROM recent_services ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query recent_services: %w", err)
	}
	recent, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ServiceTemplate, error) {
		var t entity.ServiceTemplate
		err := row.Scan(&t.Name, &t.Description, &t.OriginalPrice)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan recent_services: %w", err)
	}
	return recent, nil
}

// Save reemplaza ambas listas en una sola transacción.
func (r *HistoryRepo) Save(ctx context.Context, recent []entity.ServiceTemplate, history []entity.HistoryRecord) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM recent_services`)
	batch.Queue(`DELETE FROM quote_history`)
	for i, t := range recent {
		batch.Queue(`
			INSERT INTO recent_services (position, name, description, original_price)
			VALUES ($1, $2, $3, $4)`,
			i, t.Name, t.Description, t.OriginalPrice)
	}
	for i, h := range history {
		snapshot, err := json.Marshal(h.Quote)
		if err != nil {
			return fmt.Errorf("codificar snapshot %s: %w", h.ID, err)
		}
		batch.Queue(`
			INSERT INTO quote_history (position, id, client_name, project_name, total_amount, quote_date, snapshot)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			i, h.ID, h.ClientName, h.ProjectName, h.TotalAmount, h.QuoteDate, string(snapshot))
	}

	return r.tx.Run(ctx, func(q Querier) error {
		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("id de historial duplicado: %w", err)
			}
			return fmt.Errorf("guardar historial: %w", err)
		}
		return nil
	})
}

// decodeHistory arma los registros; el primer snapshot inválido produce *domain.ParseError.
func decodeHistory(rows []historyRow) ([]entity.HistoryRecord, error) {
	out := make([]entity.HistoryRecord, 0, len(rows))
	for _, h := range rows {
		var q entity.Quote
		if err := json.Unmarshal(h.Snapshot, &q); err != nil {
			return nil, &domain.ParseError{
				Collection: repository.CollectionQuoteHistory,
				Err:        fmt.Errorf("registro %s: %w", h.ID, err),
			}
		}
		out = append(out, entity.HistoryRecord{
			ID:          h.ID,
			ClientName:  h.ClientName,
			ProjectName: h.ProjectName,
			TotalAmount: h.TotalAmount,
			QuoteDate:   h.QuoteDate,
			Quote:       q,
		})
	}
	return out, nil
}
