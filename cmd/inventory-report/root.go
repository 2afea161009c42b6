package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	appdashboard "github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dataset"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/csvsource"
	infrapdf "github.com/jhoicas/inventario-dashboard/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/inventario-dashboard/pkg/config"
	"github.com/jhoicas/inventario-dashboard/pkg/logger"
)

// Flags globales.
var (
	dataPath   string
	sourceKind string
	noColor    bool
	verbose    bool
)

// Estado resuelto en PersistentPreRunE.
var (
	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "inventory-report",
	Short: "Resumen y exportación del inventario de productos desde la terminal",
	Long: `inventory-report carga el inventario (CSV o PostgreSQL), aplica los mismos
filtros que el dashboard HTTP y muestra el resumen o exporta la vista filtrada.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		c, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("data") {
			c.Dataset.Path = dataPath
		}
		if cmd.Flags().Changed("source") {
			c.Dataset.Source = sourceKind
		}
		level := "warn"
		if verbose {
			level = "debug"
		}
		cfg = c
		log = logger.New(logger.Config{Env: "development", Level: level, Output: os.Stderr})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "ruta del CSV de inventario (por defecto DATASET_PATH)")
	rootCmd.PersistentFlags().StringVar(&sourceKind, "source", "", "fuente del dataset: csv | postgres (por defecto DATASET_SOURCE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "desactivar colores")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "logs de depuración en stderr")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(seedCmd)
}

// openSource construye la fuente configurada. closeFn libera el pool de PostgreSQL si se abrió.
func openSource(ctx context.Context) (repository.InventorySource, func(), error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return postgres.NewInventorySource(pool, cfg.Dataset.Table, log.Component("postgres")), pool.Close, nil
	case config.SourceCSV:
		return csvsource.NewSource(cfg.Dataset.Path, log.Component("csvsource")), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("fuente %q no soportada (csv|postgres)", cfg.Dataset.Source)
	}
}

// newUseCase arma el caso de uso del dashboard sobre la fuente configurada.
func newUseCase(ctx context.Context) (*appdashboard.UseCase, func(), error) {
	src, closeFn, err := openSource(ctx)
	if err != nil {
		return nil, nil, err
	}
	uc := appdashboard.NewUseCase(
		dataset.NewCache(log.Component("dataset")), src,
		infrapdf.NewMarotoPDFGenerator(),
		spreadsheet.NewXMLWriter(),
		log.Component("dashboard"),
	)
	return uc, closeFn, nil
}
