package memory

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/metrics"
)

// DefaultCheckPeriod intervalo por defecto del barrido de sesiones expiradas.
const DefaultCheckPeriod = 24 * time.Hour

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStoreConfig opciones del almacén de sesiones.
type SessionStoreConfig struct {
	CheckPeriod time.Duration // <= 0 usa DefaultCheckPeriod
	Logger      zerolog.Logger
	Metrics     *metrics.Collector
	Now         func() time.Time
}

type sessionEntry struct {
	val       []byte
	expiresAt time.Time // cero = no expira
}

// SessionStore guarda sesiones en memoria del proceso (compatible con fiber.Storage).
// Una goroutine purga las entradas expiradas cada CheckPeriod hasta que se llama Close.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]sessionEntry

	checkPeriod time.Duration
	now         func() time.Time
	log         zerolog.Logger
	metrics     *metrics.Collector

	done      chan struct{}
	closeOnce sync.Once
}

// NewSessionStore construye el almacén y arranca el barrido periódico.
func NewSessionStore(cfg SessionStoreConfig) *SessionStore {
	if cfg.CheckPeriod <= 0 {
		cfg.CheckPeriod = DefaultCheckPeriod
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	s := &SessionStore{
		data:        make(map[string]sessionEntry),
		checkPeriod: cfg.CheckPeriod,
		now:         cfg.Now,
		log:         cfg.Logger.With().Str("component", "session_store").Logger(),
		metrics:     cfg.Metrics,
		done:        make(chan struct{}),
	}
	go s.gc()
	return s
}

// Get devuelve una copia del valor; (nil, nil) si la clave no existe o expiró.
func (s *SessionStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok || s.expired(e) {
		return nil, nil
	}
	out := make([]byte, len(e.val))
	copy(out, e.val)
	return out, nil
}

// Set guarda una copia de val. exp <= 0 significa sin expiración.
func (s *SessionStore) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	e := sessionEntry{val: make([]byte, len(val))}
	copy(e.val, val)
	if exp > 0 {
		e.expiresAt = s.now().Add(exp)
	}
	s.mu.Lock()
	s.data[key] = e
	n := len(s.data)
	s.mu.Unlock()
	s.metrics.SetActiveSessions(n)
	return nil
}

// Delete elimina la sesión; no es error si no existe.
func (s *SessionStore) Delete(key string) error {
	if key == "" {
		return nil
	}
	s.mu.Lock()
	delete(s.data, key)
	n := len(s.data)
	s.mu.Unlock()
	s.metrics.SetActiveSessions(n)
	return nil
}

// Reset elimina todas las sesiones.
func (s *SessionStore) Reset() error {
	s.mu.Lock()
	s.data = make(map[string]sessionEntry)
	s.mu.Unlock()
	s.metrics.SetActiveSessions(0)
	return nil
}

// Close detiene el barrido. Es idempotente.
func (s *SessionStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// Len número de entradas guardadas, incluidas las expiradas aún no purgadas.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// PurgeExpired elimina las sesiones expiradas y devuelve cuántas borró.
func (s *SessionStore) PurgeExpired() int {
	s.mu.Lock()
	purged := 0
	for k, e := range s.data {
		if s.expired(e) {
			delete(s.data, k)
			purged++
		}
	}
	n := len(s.data)
	s.mu.Unlock()

	s.metrics.SessionsPurged(purged)
	s.metrics.SetActiveSessions(n)
	return purged
}

func (s *SessionStore) expired(e sessionEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

func (s *SessionStore) gc() {
	ticker := time.NewTicker(s.checkPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if n := s.PurgeExpired(); n > 0 {
				s.log.Debug().Int("purged", n).Msg("sesiones expiradas eliminadas")
			}
		}
	}
}
