package repository

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// Nombres de las colecciones persistidas (también usados en los *domain.ParseError).
const (
	CollectionRecentServices = "recent-services"
	CollectionQuoteHistory   = "quote-history"
)

// HistoryRepository define el puerto de persistencia del historial (archivo, PostgreSQL, memoria).
//
// Load devuelve ambas listas en orden (más reciente primero). Si una colección no se puede
// decodificar se devuelve vacía junto con un *domain.ParseError (errors.Join si fallan ambas);
// la otra colección se devuelve igual. Cualquier otro error es de E/S.
//
// Save reemplaza el contenido completo de ambas listas.
type HistoryRepository interface {
	Load(ctx context.Context) (recent []entity.ServiceTemplate, history []entity.HistoryRecord, err error)
	Save(ctx context.Context, recent []entity.ServiceTemplate, history []entity.HistoryRecord) error
}
