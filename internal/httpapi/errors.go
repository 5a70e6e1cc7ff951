package httpapi

import (
	"errors"
	"log/slog"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// badRequest marks a malformed query or body.
func badRequest(msg string) error {
	return fiber.NewError(fiber.StatusBadRequest, msg)
}

// errorHandler maps service errors onto the response envelope.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *domain.ValidationError
		var ferr *fiber.Error
		switch {
		case errors.As(err, &verr):
			return ValidationFailed(c, verr.Fields)
		case errors.Is(err, repository.ErrNotFound):
			return Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrNegativeCount):
			return Error(c, fiber.StatusBadRequest, err.Error())
		case errors.As(err, &ferr):
			return Error(c, ferr.Code, ferr.Message)
		default:
			logger.ErrorContext(c.UserContext(), "unhandled request error",
				"method", c.Method(), "path", c.Path(), "error", err)
			return Error(c, fiber.StatusInternalServerError, "internal error")
		}
	}
}
