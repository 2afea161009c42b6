package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/infrastructure/csvsource"
)

var now = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

const fullCSV = `Product Name,Product Category,Price,Stock Quantity,Product Ratings,Manufacturing Date,Expiration Date,Last Update,Warehouse Location
Laptop,Electronics,999.99,40,4.5,2023-01-15,2028-01-15,2024-06-01,Bogotá
Mouse,Electronics,19.50,3,n/a,fecha-mala,2027-02-01,,Medellín
Camisa,Clothing,35,12,4.1,2022/11/03,,2024-05-20 10:00:00,
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ArchivoCompleto(t *testing.T) {
	src := csvsource.NewSource(writeFile(t, fullCSV), zerolog.Nop())
	ds, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	laptop := ds.At(0)
	assert.Equal(t, "Laptop", laptop.ProductName)
	assert.True(t, laptop.Price.Equal(decimal.RequireFromString("999.99")))
	assert.Equal(t, int64(40), laptop.StockQuantity)
	require.True(t, laptop.ProductRatings.Valid)
	assert.True(t, laptop.ProductRatings.Decimal.Equal(decimal.RequireFromString("4.5")))
	require.NotNil(t, laptop.ManufacturingYear)
	assert.Equal(t, 2023, *laptop.ManufacturingYear)
	assert.Equal(t, "Bogotá", laptop.WarehouseLocation)
	require.NotNil(t, laptop.WarehouseLastUpdate)
	assert.Equal(t, 2024, laptop.WarehouseLastUpdate.Year())

	mouse := ds.At(1)
	assert.False(t, mouse.ProductRatings.Valid, "rating no numérico queda nulo")
	assert.Nil(t, mouse.ManufacturingDate, "fecha inválida queda nula")
	assert.Nil(t, mouse.ManufacturingYear)
	assert.Nil(t, mouse.LastUpdate)
	assert.Nil(t, mouse.WarehouseLastUpdate)

	camisa := ds.At(2)
	require.NotNil(t, camisa.ManufacturingDate)
	assert.Equal(t, time.November, camisa.ManufacturingDate.Month())
	assert.Nil(t, camisa.ExpirationDate)
	assert.False(t, camisa.HasLocation())

	assert.True(t, ds.HasColumn(entity.ColWarehouseLocation))
	assert.True(t, strings.HasPrefix(src.Identity(), "csv:"))
}

func TestParse_ColumnasOpcionalesAusentes(t *testing.T) {
	const data = "ProductName,ProductCategory,Price,StockQuantity,ProductRatings\nA,Cat,1.5,2,3\n"
	ds, err := csvsource.Parse(strings.NewReader(data), "mem", now)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	assert.False(t, ds.HasColumn(entity.ColWarehouseLocation))
	assert.False(t, ds.HasColumn(entity.ColLastUpdate))
	r := ds.At(0)
	require.NotNil(t, r.WarehouseLastUpdate)
	assert.Equal(t, now, *r.WarehouseLastUpdate, "sin LastUpdate se usa la hora de carga")
}

func TestParse_EncabezadosEnSnakeCase(t *testing.T) {
	const data = "product_name,product_category,price,stock_quantity,product_ratings\nA,Cat,1,2.0,\n"
	ds, err := csvsource.Parse(strings.NewReader(data), "mem", now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ds.At(0).StockQuantity)
	assert.False(t, ds.At(0).ProductRatings.Valid)
}

func TestParse_SoloEncabezadoEsDatasetVacio(t *testing.T) {
	ds, err := csvsource.Parse(strings.NewReader("Product Name,Product Category,Price,Stock Quantity,Product Ratings\n"), "mem", now)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestParse_Errores(t *testing.T) {
	header := "Product Name,Product Category,Price,Stock Quantity,Product Ratings\n"
	cases := []struct {
		name string
		data string
		want error
	}{
		{"vacío", "", domain.ErrMalformedSource},
		{"falta columna", "Product Name,Price,Stock Quantity,Product Ratings\nA,1,1,1\n", domain.ErrMissingColumn},
		{"precio no numérico", header + "A,B,gratis,1,1\n", domain.ErrMalformedSource},
		{"precio negativo", header + "A,B,-3,1,1\n", domain.ErrMalformedSource},
		{"stock decimal", header + "A,B,3,1.5,1\n", domain.ErrMalformedSource},
		{"comillas rotas", header + "\"A,B,3,1,1\n", domain.ErrMalformedSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvsource.Parse(strings.NewReader(tc.data), "mem", now)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, domain.ErrLoad, "todo error de carga envuelve ErrLoad")
		})
	}
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	src := csvsource.NewSource(filepath.Join(t.TempDir(), "no-existe.csv"), zerolog.Nop())
	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.ErrorIs(t, err, domain.ErrLoad)
}

func TestParse_IgnoraFilasEnBlanco(t *testing.T) {
	const data = "Product Name,Product Category,Price,Stock Quantity,Product Ratings\nA,B,1,1,1\n,,,,\nC,D,2,2,2\n"
	ds, err := csvsource.Parse(strings.NewReader(data), "mem", now)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}
