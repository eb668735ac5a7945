package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db querier) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserta el usuario tomando el ID de la secuencia compartida.
// nextval solo se evalúa si el username no existe, así un duplicado no consume identificador
// (salvo en una carrera, donde el valor perdido nunca se reutiliza).
func (r *UserRepo) CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error) {
	query := `
		INSERT INTO users (id, username, password, is_admin)
		SELECT nextval('entity_id_seq'), $1, $2, FALSE
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE username = $1)
		RETURNING id, username, password, is_admin`
	var u entity.User
	err := r.db.QueryRow(ctx, query, in.Username, in.Password).Scan(&u.ID, &u.Username, &u.Password, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// GetUser obtiene un usuario por ID.
func (r *UserRepo) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, `SELECT id, username, password, is_admin FROM users WHERE id = $1`, id)
}

// GetUserByUsername obtiene un usuario por username (comparación exacta).
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT id, username, password, is_admin FROM users WHERE username = $1`, username)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Password, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
