// Package filestore persiste el historial como documentos JSON sobre un afero.Fs.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Nombres de archivo de cada colección dentro del directorio de datos.
const (
	RecentServicesFile = "proda-recent-services.json"
	QuoteHistoryFile   = "proda-quote-history.json"
)

var _ repository.HistoryRepository = (*HistoryRepository)(nil)

// HistoryRepository guarda cada colección en su propio archivo JSON.
// Un archivo inexistente equivale a una colección vacía.
type HistoryRepository struct {
	fs  afero.Fs
	dir string
}

// NewHistoryRepository construye el adaptador sobre fs (afero.NewOsFs() en producción).
func NewHistoryRepository(fs afero.Fs, dir string) *HistoryRepository {
	return &HistoryRepository{fs: fs, dir: dir}
}

// Load lee ambas colecciones; una ilegible vuelve vacía con *domain.ParseError.
func (r *HistoryRepository) Load(_ context.Context) ([]entity.ServiceTemplate, []entity.HistoryRecord, error) {
	var recent []entity.ServiceTemplate
	var history []entity.HistoryRecord

	errRecent := r.read(RecentServicesFile, repository.CollectionRecentServices, &recent)
	if errRecent != nil {
		recent = nil
	}
	errHistory := r.read(QuoteHistoryFile, repository.CollectionQuoteHistory, &history)
	if errHistory != nil {
		history = nil
	}
	return recent, history, errors.Join(errRecent, errHistory)
}

// Save escribe ambas colecciones reemplazando su contenido. Primero se escriben los dos
// temporales y solo entonces se renombran: si falla una escritura ningún archivo cambia.
func (r *HistoryRepository) Save(_ context.Context, recent []entity.ServiceTemplate, history []entity.HistoryRecord) error {
	if recent == nil {
		recent = []entity.ServiceTemplate{}
	}
	if history == nil {
		history = []entity.HistoryRecord{}
	}
	if err := r.fs.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("filestore: crear directorio %s: %w", r.dir, err)
	}

	staged := make([]string, 0, 2)
	for _, f := range []struct {
		name string
		v    any
	}{
		{RecentServicesFile, recent},
		{QuoteHistoryFile, history},
	} {
		if err := r.stage(f.name, f.v); err != nil {
			r.discard(staged)
			return err
		}
		staged = append(staged, f.name)
	}

	for i, name := range staged {
		path := filepath.Join(r.dir, name)
		if err := r.fs.Rename(path+".tmp", path); err != nil {
			r.discard(staged[i:])
			return fmt.Errorf("filestore: reemplazar %s: %w", name, err)
		}
	}
	return nil
}

func (r *HistoryRepository) read(name, collection string, dst any) error {
	data, err := afero.ReadFile(r.fs, filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("filestore: leer %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &domain.ParseError{Collection: collection, Err: err}
	}
	return nil
}

// stage escribe el temporal <name>.tmp sin tocar el archivo vigente.
func (r *HistoryRepository) stage(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("filestore: codificar %s: %w", name, err)
	}
	if err := afero.WriteFile(r.fs, filepath.Join(r.dir, name+".tmp"), data, 0o644); err != nil {
		return fmt.Errorf("filestore: escribir %s: %w", name, err)
	}
	return nil
}

// discard borra temporales pendientes; un error aquí no cambia el resultado de Save.
func (r *HistoryRepository) discard(names []string) {
	for _, name := range names {
		_ = r.fs.Remove(filepath.Join(r.dir, name+".tmp"))
	}
}
