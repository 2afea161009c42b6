package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// DashboardHandler maneja los endpoints del dashboard de inventario.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Options godoc
// @Summary      Opciones de filtro
// @Description  Categorías disponibles (en orden de aparición) y filtro por defecto.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.FilterOptionsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/options [get]
func (h *DashboardHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Dashboard filtrado
// @Description  Métricas, conteo por categoría, distribución de precios y tabla sobre la vista filtrada.
// @Description  Heatmap, stock bajo y fast-moving se calculan sobre el dataset completo.
// @Tags         dashboard
// @Produce      json
// @Param        category    query  []string  false  "Categoría exacta (repetible). Sin parámetro: todas."  collectionFormat(multi)
// @Param        price_min   query  number    false  "Precio mínimo (>= 0)"
// @Param        price_max   query  number    false  "Precio máximo (>= 0)"
// @Param        rating_min  query  number    false  "Rating mínimo [0,5]"
// @Param        rating_max  query  number    false  "Rating máximo [0,5]"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	req, bad := parseFilter(c)
	if bad != "" {
		return invalidParam(c, bad)
	}
	out, err := h.uc.Build(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar vista filtrada
// @Description  Descarga la tabla filtrada como CSV, PDF o SpreadsheetML.
// @Tags         dashboard
// @Produce      text/csv
// @Produce      application/pdf
// @Produce      application/vnd.ms-excel
// @Param        format      query  string    false  "csv | pdf | xml"  default(csv)
// @Param        category    query  []string  false  "Categorías (repetible)"  collectionFormat(multi)
// @Param        price_min   query  number    false  "Precio mínimo"
// @Param        price_max   query  number    false  "Precio máximo"
// @Param        rating_min  query  number    false  "Rating mínimo"
// @Param        rating_max  query  number    false  "Rating máximo"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/export [get]
func (h *DashboardHandler) Export(c *fiber.Ctx) error {
	req, bad := parseFilter(c)
	if bad != "" {
		return invalidParam(c, bad)
	}
	file, err := h.uc.Export(c.UserContext(), req, c.Query("format", dashboard.FormatCSV))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return c.Send(file.Content)
}

// parseFilter lee los parámetros del filtro. Devuelve el nombre del primer parámetro
// numérico mal formado, o "" si todo es válido.
//
// Cada valor de category es una etiqueta completa, tal como la devuelve /options
// (puede contener comas). Si aparece solo con valores vacíos (?category=) la
// selección queda vacía y la vista no tiene datos.
func parseFilter(c *fiber.Ctx) (dto.FilterRequest, string) {
	var req dto.FilterRequest

	args := c.Context().QueryArgs()
	if args.Has("category") {
		req.CategoriesSet = true
		req.Categories = []string{}
		for _, raw := range args.PeekMulti("category") {
			if name := string(raw); name != "" {
				req.Categories = append(req.Categories, name)
			}
		}
	}

	fields := []struct {
		name string
		dst  **float64
	}{
		{"price_min", &req.PriceMin},
		{"price_max", &req.PriceMax},
		{"rating_min", &req.RatingMin},
		{"rating_max", &req.RatingMax},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(c.Query(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, f.name
		}
		*f.dst = &v
	}
	return req, ""
}
