package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	userSecret  string
	adminSecret string
)

// Init sets the per-principal JWT secrets used to validate tokens.
func Init(user, admin string) {
	userSecret = user
	adminSecret = admin
}

// tokenFromRequest reads the jwt cookie first, then the bearer header.
func tokenFromRequest(c *fiber.Ctx) string {
	if tok := c.Cookies("jwt"); tok != "" {
		return tok
	}
	auth := c.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}

// authorize validates the token against the given secret and stashes the
// principal id under localKey for the handlers.
func authorize(c *fiber.Ctx, secret, localKey string) error {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"errors": "Missing token"})
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"errors": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"errors": "Invalid token claims"})
	}

	id, exists := claims["id"].(string)
	if !exists {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"errors": "Invalid token payload"})
	}

	c.Locals(localKey, id)
	return c.Next()
}

// UserMiddleware guards end-user routes.
func UserMiddleware(c *fiber.Ctx) error {
	return authorize(c, userSecret, "user_id")
}
