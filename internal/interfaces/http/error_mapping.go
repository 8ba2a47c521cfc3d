package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Los casos de uso
// envuelven los sentinels con contexto, por eso se compara con errors.Is.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrProductoNoListo):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCTO_NO_LISTO", Message: "el producto no está listo para producción"})
	case errors.Is(err, domain.ErrUnidadIncompatible):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNIDAD_INCOMPATIBLE", Message: "unidad del producto y del envase no coinciden"})
	case errors.Is(err, domain.ErrSinDatosCalidad):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_DATOS_CALIDAD", Message: "la fase no tiene evaluaciones activas"})
	case errors.Is(err, domain.ErrEstadoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ESTADO_INVALIDO", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		// 400: el caller debe corregir la orden; el mensaje identifica el material.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
