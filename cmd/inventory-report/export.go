package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appdashboard "github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/interfaces/cli"
)

var (
	exportFilter filterFlags
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta la vista filtrada a CSV, PDF o SpreadsheetML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportFilter.register(exportCmd.Flags())
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", appdashboard.FormatCSV, "formato: csv | pdf | xml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "archivo destino (por defecto filtered_inventory.<formato>; '-' = stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	uc, closeFn, err := newUseCase(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	file, err := uc.Export(ctx, exportFilter.request(cmd.Flags()), exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "-" {
		_, err = cmd.OutOrStdout().Write(file.Content)
		return err
	}
	path := exportOutput
	if path == "" {
		path = file.FileName
	}
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes)\n", cli.ColorOK("exportado"), path, len(file.Content))
	return nil
}
