// Package pdf genera el reporte PDF de la tabla de inventario filtrada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                  │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FILTRO: categorías / precio / rating                       │
//	│  MÉTRICAS: precio promedio | total | rating promedio        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Precio | Stock | Rating      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appdashboard "github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// anchos de columna de la tabla (suman 12)
var columnSizes = []int{4, 3, 2, 1, 2}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appdashboard.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa dashboard.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryPDF(_ context.Context, report appdashboard.ExportReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(filterRow(report.Filter))
	m.AddRows(metricsRow(report.Metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(report.Columns))
	m.AddRows(tableDetailRows(report.Rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report appdashboard.ExportReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func filterRow(f dto.FilterDTO) core.Row {
	categories := strings.Join(f.Categories, ", ")
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FILTRO APLICADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Categorías: %s   |   Precio: %s – %s   |   Rating: %s – %s",
				nonEmpty(categories, "—"),
				f.PriceMin.String(), f.PriceMax.String(),
				f.RatingMin.String(), f.RatingMax.String(),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func metricsRow(m dto.SummaryMetricsDTO) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		metric("Precio promedio", m.AvgPrice),
		metric("Total de productos", strconv.Itoa(m.TotalProducts)),
		metric("Rating promedio", m.AvgRating),
	)
}

func tableHeaderRow(columns []string) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, label := range columns {
		cols = append(cols, col.New(columnSizes[i%len(columnSizes)]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: columnAlign(i),
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableDetailRows(rows []dto.ProductRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		rating := appdashboard.FormatRating(r.ProductRatings)
		values := []string{
			r.ProductName,
			r.ProductCategory,
			r.Price.StringFixed(2),
			strconv.FormatInt(r.StockQuantity, 10),
			rating,
		}
		cols := make([]core.Col, 0, len(values))
		for i, v := range values {
			cols = append(cols, col.New(columnSizes[i]).Add(text.New(v, props.Text{
				Size: 8, Align: columnAlign(i), Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnAlign texto a la izquierda, números a la derecha.
func columnAlign(i int) align.Type {
	if i < 2 {
		return align.Left
	}
	return align.Right
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
