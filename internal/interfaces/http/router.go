package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *dashboard.UseCase
	JWTSecret   string
	Log         zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	// Dashboard (público, solo lectura)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := api.Group("/dashboard")
	dash.Get("/options", dashboardHandler.Options)
	dash.Get("/export", dashboardHandler.Export)
	dash.Get("/", dashboardHandler.Get)

	// Dataset (protegido: Bearer Token con rol admin)
	datasetHandler := NewDatasetHandler(deps.DashboardUC, deps.Log)
	ds := api.Group("/dataset", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	ds.Post("/reload", datasetHandler.Reload)
}
