package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
)

// Códigos de error de la API.
const (
	CodeInvalidParams = "INVALID_PARAMS"
	CodeLoadFailed    = "LOAD_FAILED"
	CodeNoData        = "NO_DATA"
	CodeInternal      = "INTERNAL"
)

// writeError traduce errores de la capa de aplicación a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var verr *dashboard.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Code: CodeInvalidParams, Message: "filtro inválido", Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidParams, Message: err.Error()})
	case errors.Is(err, domain.ErrLoad):
		// El servidor sigue arriba; la próxima petición reintenta la carga.
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: CodeLoadFailed, Message: err.Error()})
	case errors.Is(err, domain.ErrNoData):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNoData, Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: err.Error()})
	}
}

func invalidParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: CodeInvalidParams, Message: "parámetro '" + name + "' debe ser numérico",
	})
}
