package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/interfaces/cli"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestTable_AlineaColumnas(t *testing.T) {
	noColor(t)
	tbl := cli.NewTable(cli.Column{Header: "Producto"}, cli.Column{Header: "Stock", Align: cli.AlignRight})
	tbl.AddRow("Café", "7")
	tbl.AddRow("Laptop Pro", "120", "ignorado")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  Producto    Stock", lines[0])
	assert.Equal(t, "  ----------  -----", lines[1])
	assert.Equal(t, "  Café            7", lines[2], "el ancho se mide en runas")
	assert.Equal(t, "  Laptop Pro    120", lines[3])
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_SinColumnas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cli.NewTable().Render(&buf))
	assert.Zero(t, buf.Len())
}

func TestColorStock_SinColorDevuelveValor(t *testing.T) {
	noColor(t)
	assert.Equal(t, "3", cli.ColorStock("3"))
	assert.Equal(t, "abc", cli.ColorStock("abc"))
}

func TestRenderDashboard_NoData(t *testing.T) {
	noColor(t)
	d := &dto.DashboardDTO{
		Filter:  dto.FilterDTO{Categories: []string{}, PriceMax: decimal.NewFromInt(10), RatingMax: decimal.NewFromInt(5)},
		NoData:  true,
		Message: "no hay datos que coincidan con el filtro seleccionado",
	}
	var buf bytes.Buffer
	require.NoError(t, cli.RenderDashboard(&buf, d, true))
	assert.Contains(t, buf.String(), "no hay datos que coincidan")
	assert.NotContains(t, buf.String(), "Resumen")
}

func TestRenderDashboard_Secciones(t *testing.T) {
	noColor(t)
	d := &dto.DashboardDTO{
		Filter: dto.FilterDTO{Categories: []string{"Clothing"}},
		Metrics: &dto.SummaryMetricsDTO{
			AvgPrice: "$47.50", TotalProducts: 2, AvgRating: "4.10",
		},
		CategoryCounts: &dto.BarSeriesDTO{Labels: []string{"Clothing"}, Values: []int{2}},
		LowStock: []dto.LowStockItemDTO{
			{ProductName: "Pantalón", ProductCategory: "Clothing", StockQuantity: 3},
		},
		FastMoving: &dto.FastMovingDTO{
			MedianStock: decimal.RequireFromString("9.5"),
			Total:       1,
			ByCategory:  dto.BarSeriesDTO{Labels: []string{"Clothing"}, Values: []int{1}},
		},
		Table: []dto.ProductRowDTO{
			{ProductName: "Pantalón", ProductCategory: "Clothing", Price: decimal.NewFromInt(60), StockQuantity: 3},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, cli.RenderDashboard(&buf, d, true))
	out := buf.String()

	assert.Contains(t, out, "Precio promedio: $47.50")
	assert.Contains(t, out, "Rating promedio: 4.10")
	assert.Contains(t, out, "mediana 9.5")
	assert.Contains(t, out, "Product Name")
	assert.Contains(t, out, "Pantalón")
}

func TestRenderDashboard_HeatmapYDistribucionDePrecios(t *testing.T) {
	noColor(t)
	stock := int64(12)
	d := &dto.DashboardDTO{
		Filter: dto.FilterDTO{Categories: []string{"Clothing", "Groceries"}},
		PriceDistribution: []dto.BoxGroupDTO{{
			Category: "Clothing",
			Min:      decimal.NewFromInt(10),
			Q1:       decimal.RequireFromString("12.5"),
			Median:   decimal.NewFromInt(15),
			Q3:       decimal.RequireFromString("17.5"),
			Max:      decimal.NewFromInt(20),
		}},
		StockHeatmap: &dto.HeatmapDTO{
			X: []string{"Clothing", "Groceries"},
			Y: []string{"Bodega Norte"},
			Z: [][]*int64{{&stock, nil}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, cli.RenderDashboard(&buf, d, false))
	out := buf.String()

	assert.Contains(t, out, "Distribución de precios")
	assert.Contains(t, out, "Mediana")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "17.50")
	assert.Contains(t, out, "Stock por ubicación")

	var row string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "Bodega Norte") {
			row = l
		}
	}
	require.NotEmpty(t, row, "una fila por ubicación")
	fields := strings.Fields(row)
	assert.Equal(t, []string{"Bodega", "Norte", "12", "-"}, fields, "celda sin stock se muestra como -")
}
