// @title                       Inventario Dashboard API
// @version                     1.0
// @description                 Dashboard de inventario: filtros, métricas, vistas globales y exportación.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventario-dashboard/docs"
	appdashboard "github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dataset"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/csvsource"
	infrapdf "github.com/jhoicas/inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/inventario-dashboard/internal/interfaces/http"
	"github.com/jhoicas/inventario-dashboard/pkg/config"
	"github.com/jhoicas/inventario-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Dataset.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuente del inventario: CSV local o tabla PostgreSQL
	var source repository.InventorySource
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		source = postgres.NewInventorySource(pool, cfg.Dataset.Table, log.Component("postgres"))
	default:
		source = csvsource.NewSource(cfg.Dataset.Path, log.Component("csvsource"))
	}

	cache := dataset.NewCache(log.Component("dataset"))
	dashboardUC := appdashboard.NewUseCase(
		cache, source,
		infrapdf.NewMarotoPDFGenerator(),
		spreadsheet.NewXMLWriter(),
		log.Component("dashboard"),
	)

	// Precarga: si falla, el servidor arranca igual y cada petición reintenta.
	if ds, err := dashboardUC.Dataset(ctx); err != nil {
		log.Error().Err(err).Str("source", source.Identity()).Msg("precarga del dataset")
	} else {
		log.Info().Int("records", ds.Len()).Str("dataset_id", ds.ID()).Msg("dataset precargado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "cached_datasets": cache.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
