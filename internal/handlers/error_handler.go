package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// ErrorHandler renders errors that escape the handlers, such as an oversized body
// rejected by fiber, as the JSON error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code == fiber.StatusRequestEntityTooLarge {
		message = "File too large."
	}

	return c.Status(code).JSON(models.ErrorResponse{Error: message})
}
