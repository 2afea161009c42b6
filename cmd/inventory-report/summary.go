package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-dashboard/internal/interfaces/cli"
)

var (
	summaryFilter filterFlags
	summaryRows   bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Muestra métricas, conteo por categoría, stock bajo y fast-moving",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryFilter.register(summaryCmd.Flags())
	summaryCmd.Flags().BoolVar(&summaryRows, "rows", false, "incluir la tabla de productos filtrados")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	uc, closeFn, err := newUseCase(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := uc.Build(ctx, summaryFilter.request(cmd.Flags()))
	if err != nil {
		return err
	}
	return cli.RenderDashboard(cmd.OutOrStdout(), out, summaryRows)
}
