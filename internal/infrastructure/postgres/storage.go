package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
)

var _ repository.Storage = (*Storage)(nil)

// Storage backend durable: entidades en PostgreSQL, sesiones en memoria del proceso.
// Todas las tablas toman su ID de la secuencia entity_id_seq (contador compartido entre tipos).
type Storage struct {
	*UserRepo
	*CatalogRepo
	*OrderRepo

	pool     *pgxpool.Pool
	sessions *memory.SessionStore
}

// NewStorage compone los repositorios sobre el pool. Storage toma posesión del pool y de sessions.
func NewStorage(pool *pgxpool.Pool, sessions *memory.SessionStore) *Storage {
	return &Storage{
		UserRepo:    NewUserRepository(pool),
		CatalogRepo: NewCatalogRepository(pool),
		OrderRepo:   NewOrderRepository(pool),
		pool:        pool,
		sessions:    sessions,
	}
}

// SessionStore devuelve el almacén de sesiones compartido.
func (s *Storage) SessionStore() repository.SessionStore {
	return s.sessions
}

// Close detiene el barrido de sesiones y cierra el pool.
func (s *Storage) Close() error {
	err := s.sessions.Close()
	s.pool.Close()
	return err
}
