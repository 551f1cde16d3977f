package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware guards course-management routes. Tokens signed with the
// user secret fail validation here, so a user token never grants admin
// access.
func AdminMiddleware(c *fiber.Ctx) error {
	return authorize(c, adminSecret, "admin_id")
}
