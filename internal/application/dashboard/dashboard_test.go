package dashboard_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dataset"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/csvsource"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const inventoryCSV = `Product Name,Product Category,Price,Stock Quantity,Product Ratings,Warehouse Location
Laptop,Electronics,1250.5,40,4.5,Bogotá
Mouse,Electronics,19.5,3,3.9,Medellín
Camisa,Clothing,35,12,4.1,Bogotá
Pantalón,Clothing,60,3,,
Arroz,Groceries,2.25,500,2,Cali
Café,Groceries,8.75,7,4.9,Cali
`

type memSource struct {
	data  string
	loads int
	err   error
}

func (m *memSource) Identity() string { return "mem:inventory" }

func (m *memSource) Load(_ context.Context) (*entity.Dataset, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	return csvsource.Parse(strings.NewReader(m.data), m.Identity(), time.Now())
}

type fakePDF struct{ report dashboard.ExportReport }

func (f *fakePDF) GenerateInventoryPDF(_ context.Context, r dashboard.ExportReport) ([]byte, error) {
	f.report = r
	return []byte("%PDF-fake"), nil
}

type fakeSheet struct{}

func (fakeSheet) WriteSpreadsheet(_ context.Context, r dashboard.ExportReport) ([]byte, error) {
	return []byte("<Workbook/>"), nil
}

func newUseCase(src *memSource) (*dashboard.UseCase, *fakePDF) {
	pdf := &fakePDF{}
	return dashboard.NewUseCase(dataset.NewCache(zerolog.Nop()), src, pdf, fakeSheet{}, zerolog.Nop()), pdf
}

func f(v float64) *float64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Formateo
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.57", dashboard.FormatCurrency(decimal.NewNullDecimal(decimal.RequireFromString("1234.567"))))
	assert.Equal(t, "$0.50", dashboard.FormatCurrency(decimal.NewNullDecimal(decimal.RequireFromString("0.5"))))
	assert.Equal(t, "N/A", dashboard.FormatCurrency(decimal.NullDecimal{}))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.25", dashboard.FormatRating(decimal.NewNullDecimal(decimal.RequireFromString("4.25"))))
	assert.Equal(t, "3.00", dashboard.FormatRating(decimal.NewNullDecimal(decimal.NewFromInt(3))))
	assert.Equal(t, "N/A", dashboard.FormatRating(decimal.NullDecimal{}))
}

func TestPresentMetrics_TodosLosRatingsNulos(t *testing.T) {
	view := []entity.Record{
		{ProductName: "a", ProductCategory: "A", Price: decimal.NewFromInt(10)},
		{ProductName: "b", ProductCategory: "A", Price: decimal.NewFromInt(20)},
	}
	m := dashboard.PresentMetrics(view)
	assert.Equal(t, "N/A", m.AvgRating)
	assert.False(t, m.AvgRatingRaw.Valid)
	assert.Equal(t, "$15.00", m.AvgPrice)
	assert.Equal(t, 2, m.TotalProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación CSV
// ──────────────────────────────────────────────────────────────────────────────

func TestWriteCSV_EncabezadosYNulos(t *testing.T) {
	rows := []dto.ProductRowDTO{
		{ProductName: "Mesa, roble", ProductCategory: "Furniture", Price: decimal.RequireFromString("120.5"), StockQuantity: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, dashboard.WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Product Name,Product Category,Price,Stock Quantity,Product Ratings", lines[0])
	assert.Equal(t, `"Mesa, roble",Furniture,120.5,2,`, lines[1])
}

func TestWriteCSV_IdaYVuelta(t *testing.T) {
	ds, err := csvsource.Parse(strings.NewReader(inventoryCSV), "mem", time.Now())
	require.NoError(t, err)
	original := dashboard.PresentRows(ds.Records())

	encoded, err := dashboard.EncodeCSV(original)
	require.NoError(t, err)

	reloaded, err := csvsource.Parse(bytes.NewReader(encoded), "export", time.Now())
	require.NoError(t, err)
	got := dashboard.PresentRows(reloaded.Records())

	require.Len(t, got, len(original))
	for i := range original {
		assert.Equal(t, original[i].ProductName, got[i].ProductName)
		assert.Equal(t, original[i].ProductCategory, got[i].ProductCategory)
		assert.True(t, original[i].Price.Equal(got[i].Price))
		assert.Equal(t, original[i].StockQuantity, got[i].StockQuantity)
		assert.Equal(t, original[i].ProductRatings.Valid, got[i].ProductRatings.Valid)
		assert.True(t, original[i].ProductRatings.Decimal.Equal(got[i].ProductRatings.Decimal))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_FiltroPorDefecto(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	out, err := uc.Build(context.Background(), dto.FilterRequest{})
	require.NoError(t, err)

	assert.False(t, out.NoData)
	assert.Equal(t, []string{"Electronics", "Clothing", "Groceries"}, out.Filter.Categories)
	assert.True(t, out.Filter.PriceMax.Equal(decimal.RequireFromString("1250.5")))
	// Pantalón tiene rating nulo y queda fuera
	require.NotNil(t, out.Metrics)
	assert.Equal(t, 5, out.Metrics.TotalProducts)
	assert.Len(t, out.Table, 5)

	// Las vistas globales usan el dataset completo (6 registros)
	assert.Len(t, out.LowStock, 6)
	require.NotNil(t, out.StockHeatmap)
	assert.Equal(t, []string{"Bogotá", "Cali", "Medellín"}, out.StockHeatmap.Y)
	require.NotNil(t, out.FastMoving)
	assert.True(t, out.FastMoving.MedianStock.Equal(decimal.RequireFromString("9.5")))
}

func TestBuild_VistasGlobalesIgnoranElFiltro(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	narrow, err := uc.Build(context.Background(), dto.FilterRequest{
		Categories: []string{"Clothing"}, CategoriesSet: true,
	})
	require.NoError(t, err)
	wide, err := uc.Build(context.Background(), dto.FilterRequest{})
	require.NoError(t, err)

	assert.Len(t, narrow.Table, 1)
	assert.Equal(t, wide.LowStock, narrow.LowStock)
	assert.Equal(t, wide.StockHeatmap, narrow.StockHeatmap)
	assert.Equal(t, wide.FastMoving, narrow.FastMoving)
}

func TestBuild_CategoriasVaciasEsSinDatos(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	out, err := uc.Build(context.Background(), dto.FilterRequest{CategoriesSet: true})
	require.NoError(t, err)

	assert.True(t, out.NoData)
	assert.Equal(t, domain.ErrNoData.Error(), out.Message)
	assert.Nil(t, out.Metrics, "sin datos no se calcula ninguna agregación")
	assert.Nil(t, out.LowStock)
	assert.Nil(t, out.StockHeatmap)
}

func TestBuild_RangoInvertidoNoEsError(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	out, err := uc.Build(context.Background(), dto.FilterRequest{PriceMin: f(100), PriceMax: f(10)})
	require.NoError(t, err)
	assert.True(t, out.NoData)
}

func TestBuild_RatingFueraDeRangoEsInvalido(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	_, err := uc.Build(context.Background(), dto.FilterRequest{RatingMax: f(7)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *dashboard.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "rating_max", verr.Fields[0].Field)
	assert.Equal(t, "lte", verr.Fields[0].Tag)
}

func TestBuild_LimitesNoFinitosSonInvalidos(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	inf, nan := math.Inf(1), math.NaN()

	_, err := uc.Build(context.Background(), dto.FilterRequest{PriceMax: &inf, RatingMin: &nan})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *dashboard.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "price_max", verr.Fields[0].Field)
	assert.Equal(t, "finite", verr.Fields[0].Tag)
	assert.Equal(t, "rating_min", verr.Fields[1].Field)

	_, err = uc.Export(context.Background(), dto.FilterRequest{PriceMin: &inf}, dashboard.FormatCSV)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuild_ErrorDeCarga(t *testing.T) {
	uc, _ := newUseCase(&memSource{err: domain.ErrSourceNotFound})
	_, err := uc.Build(context.Background(), dto.FilterRequest{})
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestBuild_DatasetSeCargaUnaVez(t *testing.T) {
	src := &memSource{data: inventoryCSV}
	uc, _ := newUseCase(src)
	for i := 0; i < 3; i++ {
		_, err := uc.Build(context.Background(), dto.FilterRequest{PriceMax: f(float64(100 * (i + 1)))})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, src.loads)

	_, err := uc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.loads)
}

func TestOptions(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	opts, err := uc.Options(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Clothing", "Groceries"}, opts.Categories)
	assert.True(t, opts.Defaults.RatingMax.Equal(decimal.NewFromInt(5)))
	assert.True(t, opts.Defaults.PriceMin.IsZero())
}

func TestExport_Formatos(t *testing.T) {
	uc, pdf := newUseCase(&memSource{data: inventoryCSV})
	req := dto.FilterRequest{Categories: []string{"Groceries"}, CategoriesSet: true}

	csvFile, err := uc.Export(context.Background(), req, "")
	require.NoError(t, err)
	assert.Equal(t, "filtered_inventory.csv", csvFile.FileName)
	assert.Equal(t, "text/csv", csvFile.ContentType)
	assert.Equal(t, 3, strings.Count(string(csvFile.Content), "\n"))

	pdfFile, err := uc.Export(context.Background(), req, "PDF")
	require.NoError(t, err)
	assert.Equal(t, "filtered_inventory.pdf", pdfFile.FileName)
	assert.Len(t, pdf.report.Rows, 2)
	assert.Equal(t, dashboard.TableColumns, pdf.report.Columns)

	xmlFile, err := uc.Export(context.Background(), req, "xml")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.ms-excel", xmlFile.ContentType)

	_, err = uc.Export(context.Background(), req, "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_SinDatos(t *testing.T) {
	uc, _ := newUseCase(&memSource{data: inventoryCSV})
	_, err := uc.Export(context.Background(), dto.FilterRequest{CategoriesSet: true}, "csv")
	assert.ErrorIs(t, err, domain.ErrNoData)
}
