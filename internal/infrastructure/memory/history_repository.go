// Package memory implementa los puertos de persistencia en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository guarda copias de ambas listas; se pierde al reiniciar el proceso.
type HistoryRepository struct {
	mu      sync.Mutex
	recent  []entity.ServiceTemplate
	history []entity.HistoryRecord
	saves   int
}

// NewHistoryRepository construye el adaptador vacío.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Load devuelve copias de lo último guardado.
func (r *HistoryRepository) Load(_ context.Context) ([]entity.ServiceTemplate, []entity.HistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyRecent(r.recent), copyHistory(r.history), nil
}

// Save reemplaza ambas listas.
func (r *HistoryRepository) Save(_ context.Context, recent []entity.ServiceTemplate, history []entity.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recent = copyRecent(recent)
	r.history = copyHistory(history)
	r.saves++
	return nil
}

// Saves cantidad de llamadas a Save.
func (r *HistoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func copyRecent(in []entity.ServiceTemplate) []entity.ServiceTemplate {
	return append([]entity.ServiceTemplate{}, in...)
}

func copyHistory(in []entity.HistoryRecord) []entity.HistoryRecord {
	out := make([]entity.HistoryRecord, len(in))
	for i, h := range in {
		h.Quote = h.Quote.Clone()
		out[i] = h
	}
	return out
}
