package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ServerErrorMessage is the only detail a client sees when a query fails.
const ServerErrorMessage = "Server error"

// errorPayload is the JSON error body: {"error": "..."}.
type errorPayload struct {
	Error string `json:"error"`
}

// writeError writes a JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

func writeServerError(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusInternalServerError, ServerErrorMessage)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeError(c, status, ServerErrorMessage)
		}
	}
}
