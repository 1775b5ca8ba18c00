package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/bazaar/internal/apperrors"
	"github.com/example/bazaar/internal/config"
)

// ErrorHandler maps the application error taxonomy to HTTP status codes in
// one place. Unrecognized errors become a 500 whose real message is logged;
// the raw text only reaches the caller in demo mode.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()

		switch {
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrEmailTaken),
			errors.Is(err, apperrors.ErrInvalidCode):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			status = fiber.StatusUnauthorized
		case errors.Is(err, apperrors.ErrNotVerified):
			status = fiber.StatusForbidden
		case errors.Is(err, apperrors.ErrNotFound):
			status = fiber.StatusNotFound
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				log.Printf("unhandled error: %v", err)
				if !cfg.DemoMode {
					message = "internal server error"
				}
			}
		}

		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}
