package api

import (
	"github.com/gofiber/fiber/v3"

	"advisorqa/internal/validation"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// jsonValidationError returns a 400 with field-level details.
func jsonValidationError(c fiber.Ctx, errs validation.Errors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"error":   "Invalid request",
		"details": errs,
	})
}

func jsonInternalError(c fiber.Ctx) error {
	return jsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

func malformedBody() validation.Errors {
	return validation.Errors{{Field: "body", Message: "Request body must be a valid JSON object"}}
}
