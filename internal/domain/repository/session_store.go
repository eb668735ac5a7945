package repository

import "time"

// SessionStore persistencia de sesiones de login por clave opaca.
// Tiene el mismo conjunto de métodos que fiber.Storage, así el middleware de sesión lo usa directamente.
type SessionStore interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
	Reset() error
	Close() error
}
