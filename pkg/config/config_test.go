package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-dashboard/pkg/config"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.SourceCSV, cfg.Dataset.Source)
	assert.Equal(t, "global_products_inventory.csv", cfg.Dataset.Path)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATASET_SOURCE", "POSTGRES")
	t.Setenv("DATASET_TABLE", "public.inventario")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PASSWORD", "p@ss:word")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.SourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, "public.inventario", cfg.Dataset.Table)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Contains(t, cfg.DB.ConnectionString(), "p%40ss%3Aword")
}

func TestLoad_OrigenDesconocido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATASET_SOURCE", "excel")
	_, err := config.Load()
	assert.Error(t, err)
}
