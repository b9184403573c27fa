// Package history mantiene el historial de cotizaciones y los servicios usados recientemente.
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// MaxEntries tope de cada lista; lo que excede se descarta (lo más antiguo).
const MaxEntries = 10

// IDGenerator genera el identificador de un HistoryRecord.
type IDGenerator func() string

// NewTimeOrderedID UUIDv7: ordenable por tiempo de creación.
func NewTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Store es el único dueño y mutador de las dos listas. Cada mutación es un
// read-modify-write atómico: calcula el nuevo estado, lo persiste y solo entonces lo publica.
type Store struct {
	mu      sync.Mutex
	repo    repository.HistoryRepository
	log     zerolog.Logger
	newID   IDGenerator
	recent  []entity.ServiceTemplate
	history []entity.HistoryRecord
}

// Option configura el Store.
type Option func(*Store)

// WithIDGenerator reemplaza el generador de IDs (tests).
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) { s.newID = g }
}

// NewStore construye el store sobre el puerto de persistencia.
func NewStore(repo repository.HistoryRepository, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		log:     log.With().Str("component", "history").Logger(),
		newID:   NewTimeOrderedID,
		recent:  []entity.ServiceTemplate{},
		history: []entity.HistoryRecord{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load lee ambas listas del repositorio. Una colección ilegible se descarta
// (se registra en el log) y se conserva la otra; los errores de E/S se devuelven.
func (s *Store) Load(ctx context.Context) error {
	recent, hist, err := s.repo.Load(ctx)
	if err != nil {
		if !onlyParseErrors(err) {
			return fmt.Errorf("cargar historial: %w", err)
		}
		s.log.Warn().Err(err).Msg("datos persistidos ilegibles, se inicia con la colección vacía")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = capList(append([]entity.ServiceTemplate{}, recent...))
	s.history = capList(append([]entity.HistoryRecord{}, hist...))
	s.log.Debug().Int("recent", len(s.recent)).Int("history", len(s.history)).Msg("historial cargado")
	return nil
}

// History copia de los registros, más reciente primero.
func (s *Store) History() []entity.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.HistoryRecord, len(s.history))
	for i, r := range s.history {
		r.Quote = r.Quote.Clone()
		out[i] = r
	}
	return out
}

// RecentServices copia de las plantillas recientes, más reciente primero.
func (s *Store) RecentServices() []entity.ServiceTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.ServiceTemplate{}, s.recent...)
}

// LoadRecord devuelve el snapshot guardado tal cual; no altera el orden del historial.
func (s *Store) LoadRecord(id string) (entity.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.history {
		if r.ID == id {
			return r.Quote.Clone(), nil
		}
	}
	return entity.Quote{}, fmt.Errorf("registro %s: %w", id, domain.ErrNotFound)
}

// RecordQuote agrega un registro para q reemplazando el de igual (cliente, proyecto, fecha).
func (s *Store) RecordQuote(ctx context.Context, q entity.Quote) (entity.HistoryRecord, error) {
	var rec entity.HistoryRecord
	err := s.mutate(ctx, func(recent []entity.ServiceTemplate, hist []entity.HistoryRecord) ([]entity.ServiceTemplate, []entity.HistoryRecord) {
		rec = s.newRecord(q)
		return recent, recordQuote(hist, rec)
	})
	return rec, err
}

// TouchRecentService sube la plantilla derivada de line al inicio de los recientes.
// No hace nada si la línea no tiene nombre o su precio original no es positivo.
func (s *Store) TouchRecentService(ctx context.Context, line entity.ServiceLine) error {
	return s.mutate(ctx, func(recent []entity.ServiceTemplate, hist []entity.HistoryRecord) ([]entity.ServiceTemplate, []entity.HistoryRecord) {
		return touchRecent(recent, line), hist
	})
}

// RecordGenerated registra q y toca cada una de sus líneas en una sola mutación persistida.
func (s *Store) RecordGenerated(ctx context.Context, q entity.Quote) (entity.HistoryRecord, error) {
	var rec entity.HistoryRecord
	err := s.mutate(ctx, func(recent []entity.ServiceTemplate, hist []entity.HistoryRecord) ([]entity.ServiceTemplate, []entity.HistoryRecord) {
		rec = s.newRecord(q)
		hist = recordQuote(hist, rec)
		for _, line := range q.Services {
			recent = touchRecent(recent, line)
		}
		return recent, hist
	})
	return rec, err
}

// RemoveRecentService quita la plantilla con ese nombre; ausente no es error.
func (s *Store) RemoveRecentService(ctx context.Context, name string) error {
	return s.mutate(ctx, func(recent []entity.ServiceTemplate, hist []entity.HistoryRecord) ([]entity.ServiceTemplate, []entity.HistoryRecord) {
		out := make([]entity.ServiceTemplate, 0, len(recent))
		for _, t := range recent {
			if t.Name != name {
				out = append(out, t)
			}
		}
		return out, hist
	})
}

// RemoveHistoryRecord quita el registro id; ausente no es error.
func (s *Store) RemoveHistoryRecord(ctx context.Context, id string) error {
	return s.mutate(ctx, func(recent []entity.ServiceTemplate, hist []entity.HistoryRecord) ([]entity.ServiceTemplate, []entity.HistoryRecord) {
		out := make([]entity.HistoryRecord, 0, len(hist))
		for _, r := range hist {
			if r.ID != id {
				out = append(out, r)
			}
		}
		return recent, out
	})
}

// mutate aplica fn bajo el lock, persiste el resultado y recién entonces lo publica.
// Si Save falla el estado en memoria queda como estaba.
func (s *Store) mutate(ctx context.Context, fn func([]entity.ServiceTemplate, []entity.HistoryRecord) ([]entity.ServiceTemplate, []entity.HistoryRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent, hist := fn(
		append([]entity.ServiceTemplate{}, s.recent...),
		append([]entity.HistoryRecord{}, s.history...),
	)
	if err := s.repo.Save(ctx, recent, hist); err != nil {
		return fmt.Errorf("guardar historial: %w", err)
	}
	s.recent, s.history = recent, hist
	return nil
}

func (s *Store) newRecord(q entity.Quote) entity.HistoryRecord {
	return entity.HistoryRecord{
		ID:          s.newID(),
		ClientName:  orPlaceholder(q.ClientInfo.CompanyName, entity.PlaceholderClientName),
		ProjectName: orPlaceholder(q.ClientInfo.ProjectName, entity.PlaceholderProjectName),
		TotalAmount: q.Total,
		QuoteDate:   q.ClientInfo.QuoteDate,
		Quote:       q.Clone(),
	}
}

func recordQuote(hist []entity.HistoryRecord, rec entity.HistoryRecord) []entity.HistoryRecord {
	out := make([]entity.HistoryRecord, 0, len(hist)+1)
	out = append(out, rec)
	for _, h := range hist {
		if !h.SameIdentity(rec) {
			out = append(out, h)
		}
	}
	return capList(out)
}

func touchRecent(recent []entity.ServiceTemplate, line entity.ServiceLine) []entity.ServiceTemplate {
	if line.Name == "" || !line.OriginalPrice.IsPositive() {
		return recent
	}
	out := make([]entity.ServiceTemplate, 0, len(recent)+1)
	out = append(out, entity.ServiceTemplate{
		Name:          line.Name,
		Description:   line.Description,
		OriginalPrice: line.OriginalPrice,
	})
	for _, t := range recent {
		if t.Name != line.Name {
			out = append(out, t)
		}
	}
	return capList(out)
}

func capList[T any](list []T) []T {
	if len(list) > MaxEntries {
		return list[:MaxEntries]
	}
	return list
}

// orPlaceholder solo reemplaza el texto vacío; un nombre con espacios se guarda tal cual.
func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// onlyParseErrors true si err (o todos los errores unidos en err) son *domain.ParseError.
func onlyParseErrors(err error) bool {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !onlyParseErrors(e) {
				return false
			}
		}
		return true
	}
	return errors.Is(err, domain.ErrParse)
}
