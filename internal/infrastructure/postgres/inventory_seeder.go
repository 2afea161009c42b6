package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

// tableColumns orden de columnas usado en CREATE TABLE y COPY.
var tableColumns = []string{
	"product_name", "product_category", "price", "stock_quantity", "product_ratings",
	"manufacturing_date", "expiration_date", "last_update", "warehouse_location",
}

// Seed crea la tabla si no existe, la vacía y copia todos los registros del dataset.
// Devuelve el número de filas insertadas.
func (s *InventorySource) Seed(ctx context.Context, ds *entity.Dataset) (int64, error) {
	ident := pgx.Identifier(strings.Split(s.table, "."))

	if _, err := s.q.Exec(ctx, createTableSQL(ident.Sanitize())); err != nil {
		return 0, fmt.Errorf("postgres: crear tabla %s: %w", s.table, err)
	}
	if _, err := s.q.Exec(ctx, "TRUNCATE "+ident.Sanitize()); err != nil {
		return 0, fmt.Errorf("postgres: vaciar tabla %s: %w", s.table, err)
	}

	n, err := s.q.CopyFrom(ctx, ident, tableColumns, pgx.CopyFromRows(copyRows(ds)))
	if err != nil {
		return 0, fmt.Errorf("postgres: copiar inventario: %w", err)
	}
	s.log.Info().Str("table", s.table).Int64("rows", n).Msg("inventario sembrado")
	return n, nil
}

func createTableSQL(ident string) string {
	return `
	CREATE TABLE IF NOT EXISTS ` + ident + ` (
	    product_name       TEXT          NOT NULL,
	    product_category   TEXT,
	    price              NUMERIC(14,2) NOT NULL CHECK (price >= 0),
	    stock_quantity     BIGINT        NOT NULL CHECK (stock_quantity >= 0),
	    product_ratings    NUMERIC(3,2),
	    manufacturing_date TIMESTAMPTZ,
	    expiration_date    TIMESTAMPTZ,
	    last_update        TIMESTAMPTZ,
	    warehouse_location TEXT
	)`
}

// copyRows convierte los registros a valores para COPY. Los nulos del dominio viajan como NULL.
func copyRows(ds *entity.Dataset) [][]any {
	rows := make([][]any, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		rows = append(rows, []any{
			r.ProductName,
			nullString(r.ProductCategory),
			r.Price,
			r.StockQuantity,
			r.ProductRatings,
			r.ManufacturingDate,
			r.ExpirationDate,
			r.LastUpdate,
			nullString(r.WarehouseLocation),
		})
	}
	return rows
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
