package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tuempresa/gestion-inventario/internal/application/dto"
	"github.com/tuempresa/gestion-inventario/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP: ValidationError -> 400,
// ConflictError -> 409, ErrNotFound -> 404, resto -> 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// notFound respuesta 404 con cuerpo vacío.
func notFound(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNotFound)
}

// invalidBody respuesta 400 por cuerpo no parseable.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
