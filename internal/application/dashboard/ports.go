package dashboard

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// ExportReport contenido común de todas las exportaciones de la vista filtrada.
type ExportReport struct {
	Title       string
	GeneratedAt time.Time
	Filter      dto.FilterDTO
	Metrics     dto.SummaryMetricsDTO
	Columns     []string
	Rows        []dto.ProductRowDTO
}

// ReportPDFGenerator genera la versión PDF de la tabla filtrada.
type ReportPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, report ExportReport) ([]byte, error)
}

// SpreadsheetWriter genera la versión hoja de cálculo (XML) de la tabla filtrada.
type SpreadsheetWriter interface {
	WriteSpreadsheet(ctx context.Context, report ExportReport) ([]byte, error)
}
