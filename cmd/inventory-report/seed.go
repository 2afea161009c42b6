package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/csvsource"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-dashboard/internal/interfaces/cli"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga el CSV de inventario en la tabla PostgreSQL (DATASET_TABLE)",
	Long: `seed lee el CSV indicado por --data / DATASET_PATH y reemplaza el contenido de la
tabla DATASET_TABLE. La tabla se crea si no existe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		ds, err := csvsource.NewSource(cfg.Dataset.Path, log.Component("csvsource")).Load(ctx)
		if err != nil {
			return err
		}

		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()

		n, err := postgres.NewInventorySource(pool, cfg.Dataset.Table, log.Component("postgres")).Seed(ctx, ds)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %d filas en %s\n", cli.ColorOK("cargadas"), n, cfg.Dataset.Table)
		return err
	},
}
