package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
)

// DatasetHandler operaciones de administración del dataset (protegido, rol admin).
type DatasetHandler struct {
	uc  *dashboard.UseCase
	log zerolog.Logger
}

// NewDatasetHandler construye el handler.
func NewDatasetHandler(uc *dashboard.UseCase, log zerolog.Logger) *DatasetHandler {
	return &DatasetHandler{uc: uc, log: log}
}

// Reload godoc
// @Summary      Recargar dataset
// @Description  Invalida la caché y vuelve a leer la fuente de inventario.
// @Tags         dataset
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReloadDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dataset/reload [post]
func (h *DatasetHandler) Reload(c *fiber.Ctx) error {
	out, err := h.uc.Reload(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("user", GetUserID(c)).Msg("recarga de dataset fallida")
		return writeError(c, err)
	}
	h.log.Info().Str("user", GetUserID(c)).Int("records", out.Records).Msg("dataset recargado")
	return c.JSON(out)
}
