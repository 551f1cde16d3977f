package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rohanks-dev/coursebay/internal/services"
)

func AdminSignup(c *fiber.Ctx) error {
	var input services.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Invalid request body"})
	}

	if msgs := services.ValidateSignup(input); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": msgs})
	}

	admin, err := services.SignupAdmin(input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Admin already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in creating account"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

func AdminLogin(c *fiber.Ctx) error {
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

	token, admin, err := services.LoginAdmin(request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Admin not found"})
		case errors.Is(err, services.ErrWrongPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Incorrect password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Login failed"})
	}

	setAuthCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successfully",
		"token":   token,
		"admin":   admin,
	})
}

func AdminLogout(c *fiber.Ctx) error {
	clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "Logout successfully"})
}
