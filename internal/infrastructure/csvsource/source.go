// Package csvsource carga el dataset de inventario desde un archivo CSV.
//
// La carga es estricta con la estructura (columnas obligatorias, precio y stock
// numéricos) y tolerante con los valores: fechas y ratings que no se pueden
// interpretar quedan nulos en lugar de abortar la carga.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
)

var _ repository.InventorySource = (*Source)(nil)

// dateLayouts formatos aceptados para las columnas de fecha, en orden de prueba.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
}

// Source fuente CSV identificada por la ruta absoluta del archivo.
type Source struct {
	path string
	log  zerolog.Logger
	now  func() time.Time
}

// NewSource construye la fuente. log puede ser zerolog.Nop().
func NewSource(path string, log zerolog.Logger) *Source {
	return &Source{path: path, log: log, now: time.Now}
}

// Identity devuelve "csv:<ruta absoluta>".
func (s *Source) Identity() string {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		abs = s.path
	}
	return "csv:" + abs
}

// Load lee el archivo completo y construye el Dataset.
func (s *Source) Load(ctx context.Context) (*entity.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("csvsource: %s: %w", s.path, domain.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("csvsource: abrir %s: %w: %v", s.path, domain.ErrLoad, err)
	}
	defer f.Close()

	ds, recovered, err := parse(f, s.Identity(), s.now())
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("source", ds.Source()).
		Int("records", ds.Len()).
		Int("recovered_nulls", recovered).
		Msg("dataset cargado")
	return ds, nil
}

// Parse construye un Dataset desde cualquier lector CSV. now se usa como hora de carga.
func Parse(r io.Reader, source string, now time.Time) (*entity.Dataset, error) {
	ds, _, err := parse(r, source, now)
	return ds, err
}

// parse devuelve además cuántos valores se recuperaron como nulos.
func parse(r io.Reader, source string, now time.Time) (*entity.Dataset, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("csvsource: archivo vacío: %w", domain.ErrMalformedSource)
		}
		return nil, 0, fmt.Errorf("csvsource: leer encabezados: %w: %v", domain.ErrMalformedSource, err)
	}

	idx := mapHeader(header)
	for _, col := range entity.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, 0, fmt.Errorf("csvsource: columna %q: %w", col, domain.ErrMissingColumn)
		}
	}
	columns := make([]string, 0, len(idx))
	for col := range idx {
		columns = append(columns, col)
	}

	var (
		records   []entity.Record
		recovered int
		line      = 1
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, 0, fmt.Errorf("csvsource: línea %d: %w: %v", line, domain.ErrMalformedSource, err)
		}
		if isBlank(row) {
			continue
		}

		rec, nulls, err := parseRow(row, idx)
		if err != nil {
			return nil, 0, fmt.Errorf("csvsource: línea %d: %w", line, err)
		}
		recovered += nulls
		records = append(records, rec)
	}

	return entity.NewDataset(source, now, columns, records), recovered, nil
}

// parseRow convierte una fila. Precio y stock inválidos son errores; fechas y rating se anulan.
func parseRow(row []string, idx map[string]int) (entity.Record, int, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	price, err := decimal.NewFromString(get(entity.ColPrice))
	if err != nil || price.IsNegative() {
		return entity.Record{}, 0, fmt.Errorf("precio %q: %w", get(entity.ColPrice), domain.ErrMalformedSource)
	}
	stock, err := parseStock(get(entity.ColStockQuantity))
	if err != nil {
		return entity.Record{}, 0, fmt.Errorf("stock %q: %w", get(entity.ColStockQuantity), domain.ErrMalformedSource)
	}

	nulls := 0
	rec := entity.Record{
		ProductName:       get(entity.ColProductName),
		ProductCategory:   get(entity.ColProductCategory),
		Price:             price,
		StockQuantity:     stock,
		WarehouseLocation: get(entity.ColWarehouseLocation),
	}

	if v, err := decimal.NewFromString(get(entity.ColProductRatings)); err == nil {
		rec.ProductRatings = decimal.NewNullDecimal(v)
	} else {
		nulls++
	}

	for col, dst := range map[string]**time.Time{
		entity.ColManufacturingDate: &rec.ManufacturingDate,
		entity.ColExpirationDate:    &rec.ExpirationDate,
		entity.ColLastUpdate:        &rec.LastUpdate,
	} {
		if _, ok := idx[col]; !ok {
			continue
		}
		if t, ok := parseDate(get(col)); ok {
			*dst = &t
		} else {
			nulls++
		}
	}
	return rec, nulls, nil
}

func parseStock(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negativo")
		}
		return n, nil
	}
	// Exportaciones con NaN suelen escribir enteros como "12.0"
	d, err := decimal.NewFromString(s)
	if err != nil || !d.Equal(d.Truncate(0)) || d.IsNegative() {
		return 0, fmt.Errorf("no es entero")
	}
	return d.IntPart(), nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// mapHeader asocia cada columna canónica conocida con su índice en el encabezado.
// "Product Name", "product_name" y "ProductName" se consideran equivalentes.
func mapHeader(header []string) map[string]int {
	known := make(map[string]string)
	for _, col := range append(append([]string{}, entity.RequiredColumns...), entity.OptionalColumns...) {
		known[normalize(col)] = col
	}
	idx := make(map[string]int)
	for i, h := range header {
		if col, ok := known[normalize(h)]; ok {
			if _, dup := idx[col]; !dup {
				idx[col] = i
			}
		}
	}
	return idx
}

func normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
