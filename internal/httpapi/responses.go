package httpapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the envelope for successful API calls.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

// ErrorResponse is the envelope for failed API calls.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func Success(c *fiber.Ctx, status int, data any, meta ...any) error {
	resp := SuccessResponse{Success: true, Data: data}
	if len(meta) > 0 {
		resp.Meta = meta[0]
	}
	return c.Status(status).JSON(resp)
}

func OK(c *fiber.Ctx, data any, meta ...any) error {
	return Success(c, fiber.StatusOK, data, meta...)
}

func Created(c *fiber.Ctx, data any) error {
	return Success(c, fiber.StatusCreated, data)
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func Error(c *fiber.Ctx, status int, message string, details ...any) error {
	resp := ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	return c.Status(status).JSON(resp)
}

func ValidationFailed(c *fiber.Ctx, fields map[string]string) error {
	return Error(c, fiber.StatusUnprocessableEntity, "validation failed", fields)
}
