package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rohanks-dev/coursebay/internal/services"
)

// CreateCourse handles the multipart create form. Admin only.
func CreateCourse(c *fiber.Ctx) error {
	adminID := c.Locals("admin_id").(string)

	course, err := services.CreateCourse(c, adminID)
	if err != nil {
		if errors.Is(err, services.ErrInternal) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in creating course"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

func UpdateCourse(c *fiber.Ctx) error {
	adminID := c.Locals("admin_id").(string)
	courseID := c.Params("courseId")

	course, err := services.UpdateCourse(c, adminID, courseID)
	if err != nil {
		if errors.Is(err, services.ErrNotOwner) || errors.Is(err, services.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"errors": "Can't update, created by another admin"})
		}
		if errors.Is(err, services.ErrInternal) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in updating course"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

func DeleteCourse(c *fiber.Ctx) error {
	adminID := c.Locals("admin_id").(string)
	courseID := c.Params("courseId")

	if err := services.DeleteCourse(adminID, courseID); err != nil {
		if errors.Is(err, services.ErrNotOwner) || errors.Is(err, services.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"errors": "Can't delete, created by another admin"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// GetCourses is an unauthenticated listing of every course.
func GetCourses(c *fiber.Ctx) error {
	courses, err := services.ListCourses()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in getting courses"})
	}
	return c.JSON(fiber.Map{"courses": courses})
}

func CourseDetails(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	course, err := services.CourseDetails(courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"errors": "Course not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error in getting course details"})
	}
	return c.JSON(fiber.Map{"course": course})
}

// BuyCourse creates a gateway order for the course price. User only.
func BuyCourse(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	courseID := c.Params("courseId")

	orderID, amount, err := services.BuyCourse(userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"errors": "Course not found"})
		case errors.Is(err, services.ErrAlreadyPurchased):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "User has already purchased this course"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Error in course buying"})
	}

	return c.JSON(fiber.Map{
		"orderId":  orderID,
		"amount":   amount,
		"courseId": courseID,
	})
}

// VerifyPayment checks the gateway callback signature and records the
// order and purchase on success.
func VerifyPayment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var request struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
		CourseID  string `json:"courseId"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Invalid request body"})
	}

	order, err := services.VerifyPayment(userID, request.OrderID, request.PaymentID, request.Signature, request.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadSignature):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": "Invalid payment signature"})
		case errors.Is(err, services.ErrCourseNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"errors": "Course not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"errors": "Error verifying payment"})
	}

	return c.JSON(fiber.Map{
		"message": "Payment verified & course unlocked",
		"order":   order,
	})
}
