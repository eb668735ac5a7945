package repository

import (
	"context"

	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Un usuario inexistente devuelve (nil, nil).
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// CreateUser asigna el siguiente ID y fuerza IsAdmin=false.
	// Devuelve domain.ErrUsernameTaken si el username ya existe.
	CreateUser(ctx context.Context, user entity.NewUser) (*entity.User, error)
}
