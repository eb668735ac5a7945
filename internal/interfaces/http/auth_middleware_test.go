package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/FoodOrder-api/internal/interfaces/http"
	"github.com/jhoicas/FoodOrder-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/FoodOrder-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "foodorder-test"
	testExpMin    = 60
)

// buildMiddlewareApp app mínima con AuthMiddleware y un handler que devuelve el UserID.
func buildMiddlewareApp(t *testing.T, secret string) *fiber.App {
	t.Helper()
	sessStore := memory.NewSessionStore(memory.SessionStoreConfig{})
	t.Cleanup(func() { _ = sessStore.Close() })
	sessions := session.New(session.Config{Storage: sessStore})

	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(sessions, secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_BearerValido(t *testing.T) {
	app := buildMiddlewareApp(t, testJWTSecret)
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "alice", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doGet(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body["user_id"])
}

func TestAuthMiddleware_SinCredenciales_Retorna401(t *testing.T) {
	app := buildMiddlewareApp(t, testJWTSecret)
	resp := doGet(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Not authenticated")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildMiddlewareApp(t, testJWTSecret)
	resp := doGet(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	app := buildMiddlewareApp(t, testJWTSecret)
	resp := doGet(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildMiddlewareApp(t, testJWTSecret)
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "alice", false, testIssuer, -1)
	require.NoError(t, err)

	resp := doGet(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BearerDesactivadoSinSecret(t *testing.T) {
	app := buildMiddlewareApp(t, "")
	tok, err := pkgjwt.Generate(testJWTSecret, 42, "alice", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doGet(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
