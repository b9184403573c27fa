package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/filestore"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/memory"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Cotizador-api/pkg/config"
)

// openHistoryRepository elige el adaptador según STORAGE_DRIVER. closeFn libera recursos (pool).
func openHistoryRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repo repository.HistoryRepository, closeFn func(), err error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", cfg.Storage.Driver).Msg("historial en PostgreSQL")
		return postgres.NewHistoryRepository(pool, postgres.NewTxRunner(pool)), pool.Close, nil

	case config.StorageMemory:
		log.Warn().Str("driver", cfg.Storage.Driver).Msg("historial en memoria, se pierde al reiniciar")
		return memory.NewHistoryRepository(), func() {}, nil

	default:
		log.Info().Str("driver", cfg.Storage.Driver).Str("dir", cfg.Storage.Dir).Msg("historial en archivos JSON")
		return filestore.NewHistoryRepository(afero.NewOsFs(), cfg.Storage.Dir), func() {}, nil
	}
}
