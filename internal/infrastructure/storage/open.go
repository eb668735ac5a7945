// Package storage elige y construye el backend de persistencia del proceso.
//
// Open se llama una sola vez desde cmd/api; el repository.Storage devuelto se inyecta en
// todos los casos de uso y en el middleware de sesión durante toda la vida del proceso.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/metrics"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/postgres"
	"github.com/jhoicas/FoodOrder-api/pkg/config"
)

// Open construye el Storage según cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger, m *metrics.Collector) (repository.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		return memory.New(
			memory.WithLogger(log),
			memory.WithMetrics(m),
			memory.WithSessionCheckPeriod(cfg.Session.CheckPeriod),
		), nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
		}
		sessions := memory.NewSessionStore(memory.SessionStoreConfig{
			CheckPeriod: cfg.Session.CheckPeriod,
			Logger:      log,
			Metrics:     m,
		})
		log.Info().Msg("almacenamiento PostgreSQL inicializado")
		return postgres.NewStorage(pool, sessions), nil

	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}
