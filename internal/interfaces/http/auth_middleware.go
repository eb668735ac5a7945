package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/FoodOrder-api/internal/application/dto"
	"github.com/jhoicas/FoodOrder-api/pkg/jwt"
)

// Claves en c.Locals y en la sesión.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	sessionUserID = "user_id"
)

// AuthMiddleware identifica al usuario por Bearer Token JWT o, si no hay cabecera
// Authorization, por la cookie de sesión. Deja el UserID en c.Locals.
// jwtSecret vacío desactiva la vía Bearer.
func AuthMiddleware(sessions *session.Store, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
			}
			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" || jwtSecret == "" {
				return notAuthenticated(c)
			}
			claims, err := jwt.Parse(jwtSecret, tokenString)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
			}
			c.Locals(LocalUserID, claims.UserID)
			c.Locals(LocalUsername, claims.Username)
			return c.Next()
		}

		sess, err := sessions.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: err.Error()})
		}
		id, ok := sess.Get(sessionUserID).(int64)
		if !ok || id <= 0 {
			return notAuthenticated(c)
		}
		c.Locals(LocalUserID, id)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth); 0 si no hay.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

func notAuthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Not authenticated"})
}
