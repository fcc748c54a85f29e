package response

import "github.com/gofiber/fiber/v2"

// ErrorBody represents the failure response shape
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OK sends the standard success acknowledgment
func OK(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "OK"})
}

// Created sends the 201 creation acknowledgment
func Created(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "OK"})
}

// BadRequest sends a 400 response with a short error code and a human message
func BadRequest(c *fiber.Ctx, errCode, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Error:   errCode,
		Message: message,
	})
}

// InternalServerError sends a generic 500 with no internal detail
func InternalServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
}
