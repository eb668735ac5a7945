package dto

import "github.com/jhoicas/FoodOrder-api/internal/domain/entity"

// RegisterRequest entrada para registro: username y password en texto plano (se hashea en el caso de uso).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse usuario autenticado más un token Bearer opcional para clientes sin cookies.
type LoginResponse struct {
	UserResponse
	Token string `json:"token,omitempty"`
}

// NewUserResponse convierte la entidad ocultando el hash del password.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
