package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/domain/repository"
	"github.com/jhoicas/FoodOrder-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens. Secret vacío desactiva los tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	users      repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewAuthUseCase construye el caso de uso de auth. bcryptCost <= 0 usa bcrypt.DefaultCost.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig, bcryptCost int) *AuthUseCase {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, bcryptCost: bcryptCost}
}

// Register hashea el password con bcrypt y crea el usuario.
// Devuelve domain.ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := uc.users.CreateUser(ctx, entity.NewUser{Username: in.Username, Password: string(hash)})
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Login verifica username/password. Si hay secret JWT configurado incluye un token Bearer.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	out := &dto.LoginResponse{UserResponse: *dto.NewUserResponse(user)}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.IsAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		out.Token = token
	}
	return out, nil
}

// CurrentUser usuario de la sesión; (nil, nil) si ya no existe.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}
