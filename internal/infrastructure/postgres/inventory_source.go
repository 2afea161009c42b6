package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.InventorySource = (*InventorySource)(nil)

// Querier abstrae pool o tx para ejecutar consultas.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// InventorySource lee el dataset completo desde una tabla de PostgreSQL.
// La tabla debe tener las columnas product_name, product_category, price, stock_quantity,
// product_ratings, manufacturing_date, expiration_date, last_update y warehouse_location.
type InventorySource struct {
	q     Querier
	table string
	log   zerolog.Logger
	now   func() time.Time
}

// NewInventorySource construye el adaptador. table puede incluir esquema ("public.inventory").
func NewInventorySource(q Querier, table string, log zerolog.Logger) *InventorySource {
	return &InventorySource{q: q, table: table, log: log, now: time.Now}
}

// Identity devuelve "postgres:<tabla>".
func (s *InventorySource) Identity() string { return "postgres:" + s.table }

// inventoryRow fila cruda tal como la devuelve la DB (columnas nulables como punteros).
type inventoryRow struct {
	ProductName       string
	ProductCategory   *string
	Price             decimal.Decimal
	StockQuantity     int64
	ProductRatings    decimal.NullDecimal
	ManufacturingDate *time.Time
	ExpirationDate    *time.Time
	LastUpdate        *time.Time
	WarehouseLocation *string
}

// Load ejecuta un único SELECT ordenado por la clave física de inserción.
func (s *InventorySource) Load(ctx context.Context) (*entity.Dataset, error) {
	query := selectQuery(s.table)

	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var records []entity.Record
	for rows.Next() {
		var raw inventoryRow
		if err := rows.Scan(
			&raw.ProductName,
			&raw.ProductCategory,
			&raw.Price,
			&raw.StockQuantity,
			&raw.ProductRatings,
			&raw.ManufacturingDate,
			&raw.ExpirationDate,
			&raw.LastUpdate,
			&raw.WarehouseLocation,
		); err != nil {
			return nil, fmt.Errorf("postgres: inventario scan: %w: %v", domain.ErrMalformedSource, err)
		}
		rec, err := toRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("postgres: producto %q: %w", raw.ProductName, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	ds := entity.NewDataset(s.Identity(), s.now(), allColumns(), records)
	s.log.Info().Str("source", ds.Source()).Int("records", ds.Len()).Msg("dataset cargado")
	return ds, nil
}

func (s *InventorySource) mapError(err error) error {
	switch {
	case isUndefinedTable(err):
		return fmt.Errorf("postgres: tabla %s: %w", s.table, domain.ErrSourceNotFound)
	case isUndefinedColumn(err):
		return fmt.Errorf("postgres: tabla %s: %w: %v", s.table, domain.ErrMissingColumn, err)
	default:
		return fmt.Errorf("postgres: consultar inventario: %w: %v", domain.ErrLoad, err)
	}
}

// selectQuery arma el SELECT con el nombre de tabla escapado como identificador.
func selectQuery(table string) string {
	ident := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	return `
	SELECT
	    product_name,
	    product_category,
	    price,
	    stock_quantity,
	    product_ratings,
	    manufacturing_date,
	    expiration_date,
	    last_update,
	    warehouse_location
	FROM ` + ident + `
	ORDER BY ctid`
}

// toRecord aplica las mismas reglas que la carga CSV: precio y stock no negativos,
// categoría y ubicación nulas como cadena vacía.
func toRecord(raw inventoryRow) (entity.Record, error) {
	if raw.Price.IsNegative() {
		return entity.Record{}, fmt.Errorf("precio negativo: %w", domain.ErrMalformedSource)
	}
	if raw.StockQuantity < 0 {
		return entity.Record{}, fmt.Errorf("stock negativo: %w", domain.ErrMalformedSource)
	}
	return entity.Record{
		ProductName:       raw.ProductName,
		ProductCategory:   deref(raw.ProductCategory),
		Price:             raw.Price,
		StockQuantity:     raw.StockQuantity,
		ProductRatings:    raw.ProductRatings,
		ManufacturingDate: raw.ManufacturingDate,
		ExpirationDate:    raw.ExpirationDate,
		LastUpdate:        raw.LastUpdate,
		WarehouseLocation: strings.TrimSpace(deref(raw.WarehouseLocation)),
	}, nil
}

func allColumns() []string {
	return append(append([]string{}, entity.RequiredColumns...), entity.OptionalColumns...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
