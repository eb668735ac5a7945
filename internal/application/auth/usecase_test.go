package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/FoodOrder-api/internal/application/auth"
	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/internal/domain"
	"github.com/jhoicas/FoodOrder-api/internal/domain/entity"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/FoodOrder-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T, secret string) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.New(memory.WithSeed(nil, nil))
	t.Cleanup(func() { _ = store.Close() })
	uc := auth.NewAuthUseCase(store, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, bcrypt.MinCost)
	return uc, store
}

func TestRegister_GuardaHashNoTextoPlano(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t, "")

	out, err := uc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.False(t, out.IsAdmin)

	u, err := store.GetUser(ctx, out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreta", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secreta")))
}

func TestRegister_Duplicado(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, "")

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secreta"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_CamposVacios(t *testing.T) {
	uc, _ := newUseCase(t, "")
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "alice"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, testSecret)
	reg, err := uc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secreta"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, out.ID)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "carol", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SinSecretNoEmiteToken(t *testing.T) {
	ctx := context.Background()
	uc, store := newUseCase(t, "")
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	_, err := store.CreateUser(ctx, entity.NewUser{Username: "bob", Password: string(hash)})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "bob", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, out.Token)
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t, "")
	reg, err := uc.Register(ctx, dto.RegisterRequest{Username: "alice", Password: "secreta"})
	require.NoError(t, err)

	got, err := uc.CurrentUser(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	missing, err := uc.CurrentUser(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
