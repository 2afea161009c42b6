package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/pkg/jwt"
)

const inventoryCSV = `Product Name,Product Category,Price,Stock Quantity,Product Ratings,Warehouse Location
Laptop,Electronics,1250.5,40,4.5,Bogotá
Mouse,Electronics,19.5,3,3.9,Medellín
Camisa,Clothing,35,12,4.1,Bogotá
Pantalón,Clothing,60,3,,
Arroz,Groceries,2.25,500,2,Cali
Café,Groceries,8.75,7,4.9,Cali
`

// resetFlags devuelve todos los flags a su valor por defecto entre ejecuciones.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
	// StringArray.Set("[]") deja "[]" como valor en vez de limpiar.
	summaryFilter.categories = nil
	exportFilter.categories = nil
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(inventoryCSV), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--no-color", "--source", "csv"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcomandos(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"summary", "export", "token", "seed"} {
		assert.True(t, names[want], "falta el subcomando %s", want)
	}
}

func TestSummary_TodoElInventario(t *testing.T) {
	out, err := run(t, "summary", "--data", writeCSV(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Productos:       6")
	assert.Contains(t, out, "Electronics, Clothing, Groceries")
	assert.Contains(t, out, "mediana 9.5")
}

func TestSummary_FiltroPorCategoria(t *testing.T) {
	out, err := run(t, "summary", "--data", writeCSV(t), "--category", "Clothing", "--rows")
	require.NoError(t, err)

	assert.Contains(t, out, "Productos:       2")
	assert.Contains(t, out, "Pantalón")
	assert.NotContains(t, out, "Categorías: Electronics")
}

func TestSummary_CategoriaConComa(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.csv")
	require.NoError(t, os.WriteFile(path, []byte(`Product Name,Product Category,Price,Stock Quantity,Product Ratings
Maceta,"Home, Garden",12.5,8,4.2
Lámpara,Lighting,45,5,4.0
`), 0o644))

	out, err := run(t, "summary", "--data", path, "--category", "Home, Garden")
	require.NoError(t, err)
	assert.Contains(t, out, "Categorías: Home, Garden")
	assert.Contains(t, out, "Productos:       1")
}

func TestSummary_LimiteInfinito(t *testing.T) {
	_, err := run(t, "summary", "--data", writeCSV(t), "--price-max", "Inf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSummary_RangoInvertido_SinDatos(t *testing.T) {
	out, err := run(t, "summary", "--data", writeCSV(t), "--price-min", "100", "--price-max", "10")
	require.NoError(t, err)
	assert.Contains(t, out, domain.ErrNoData.Error())
}

func TestSummary_RatingInvalido(t *testing.T) {
	_, err := run(t, "summary", "--data", writeCSV(t), "--rating-max", "7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSummary_ArchivoInexistente(t *testing.T) {
	_, err := run(t, "summary", "--data", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
}

func TestExport_CSVAArchivo(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	out, err := run(t, "export", "--data", writeCSV(t), "--category", "Groceries", "-o", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "exportado")

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Product Name,Product Category,Price,Stock Quantity,Product Ratings", lines[0])
	assert.Equal(t, "Arroz,Groceries,2.25,500,2", lines[1])
}

func TestExport_Stdout(t *testing.T) {
	out, err := run(t, "export", "--data", writeCSV(t), "-o", "-", "--rating-min", "4.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Laptop,Electronics,1250.5,40,4.5")
	assert.Contains(t, out, "Café,Groceries,8.75,7,4.9")
	assert.NotContains(t, out, "Pantalón", "rating nulo no pasa el filtro de rating")
}

func TestExport_SinDatos(t *testing.T) {
	_, err := run(t, "export", "--data", writeCSV(t), "--rating-min", "5", "-o", "-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoData))
}

func TestToken_GeneraJWTValido(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	out, err := run(t, "token", "--subject", "ops", "--role", "admin")
	require.NoError(t, err)

	subject, role, err := jwt.Parse("cli-secret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", subject)
	assert.Equal(t, "admin", role)
}

func TestToken_SinSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token")
	assert.Error(t, err)
}

