package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rohanks-dev/coursebay/internal/config"
	"github.com/rohanks-dev/coursebay/internal/services"
)

// secureCookies marks auth cookies HTTPS-only in production.
var secureCookies bool

func Init(cfg config.Config) {
	secureCookies = cfg.Env == "production"
}

// setAuthCookie mirrors the token into an HTTP-only cookie so browser
// clients authenticate without handling the bearer header themselves.
func setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   secureCookies,
		SameSite: "Lax",
	})
}

func clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   secureCookies,
		SameSite: "Lax",
	})
}

func UserSignup(c *fiber.Ctx) error {
	var input services.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Invalid request body"})
	}

	if msgs := services.ValidateSignup(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	user, err := services.SignupUser(input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in creating account"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func UserLogin(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Invalid request body"})
	}
	if request.Email == "" || request.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "All fields are required"})
	}

	token, user, err := services.LoginUser(request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "User not found"})
		case errors.Is(err, services.ErrWrongPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Incorrect password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Login failed"})
	}

	setAuthCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successfully",
		"token":   token,
		"user":    user,
	})
}

func UserLogout(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "Logout successfully"})
}

// UserPurchases lists the caller's purchase records together with the
// referenced courses.
func UserPurchases(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	purchased, courseData, err := services.ListPurchased(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in fetching purchases"})
	}

	return c.JSON(fiber.Map{
		"purchased":  purchased,
		"courseData": courseData,
	})
}
