package handlers

import (
	"log/slog"

	"github.com/bookverse/bookverse-backend/internal/apperr"
	"github.com/bookverse/bookverse-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// fail translates a service error to the flat wire envelope. Store failure
// detail is logged here and never surfaced.
func fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	if kind == apperr.KindStore {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	}
	return c.Status(kind.HTTPStatus()).JSON(dto.ErrorResponse{
		Success: false,
		Message: apperr.Message(err),
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
	})
}
