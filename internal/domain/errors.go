package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrUsernameTaken es un ErrConflict: errors.Is(err, ErrConflict) también es true.
	ErrUsernameTaken = fmt.Errorf("%w: el nombre de usuario ya está registrado", ErrConflict)

	// ErrInvariantViolation indica colisión de identificadores o contador no monótono.
	// Nunca debería llegar al cliente: es un bug de construcción del almacenamiento.
	ErrInvariantViolation = errors.New("invariante de almacenamiento violada")
)
