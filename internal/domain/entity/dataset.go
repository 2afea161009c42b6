package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dataset colección inmutable de registros cargada desde una fuente.
// Los registros se guardan en un slice privado; ningún método lo modifica después de NewDataset.
type Dataset struct {
	id       string
	source   string
	loadedAt time.Time
	columns  map[string]bool
	records  []Record
}

// NewDataset construye un Dataset completo. Copia los registros recibidos y calcula
// las columnas derivadas: ManufacturingYear desde ManufacturingDate y WarehouseLastUpdate
// desde LastUpdate (o loadedAt si la fuente no trae esa columna).
func NewDataset(source string, loadedAt time.Time, columns []string, records []Record) *Dataset {
	cols := make(map[string]bool, len(columns))
	for _, c := range columns {
		cols[c] = true
	}

	hasLastUpdate := cols[ColLastUpdate]
	out := make([]Record, len(records))
	for i, r := range records {
		if r.ManufacturingDate != nil {
			y := r.ManufacturingDate.Year()
			r.ManufacturingYear = &y
		} else {
			r.ManufacturingYear = nil
		}
		if hasLastUpdate {
			r.WarehouseLastUpdate = r.LastUpdate
		} else {
			t := loadedAt
			r.WarehouseLastUpdate = &t
		}
		out[i] = r
	}

	return &Dataset{
		id:       uuid.New().String(),
		source:   source,
		loadedAt: loadedAt,
		columns:  cols,
		records:  out,
	}
}

// ID identificador único de esta carga (cambia en cada recarga).
func (d *Dataset) ID() string { return d.id }

// Source identidad de la fuente de la que se cargó.
func (d *Dataset) Source() string { return d.source }

// LoadedAt instante de la carga.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Len número de registros.
func (d *Dataset) Len() int { return len(d.records) }

// At devuelve una copia del registro i.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records devuelve una copia del slice de registros.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// HasColumn indica si la fuente traía la columna (canónica) indicada.
func (d *Dataset) HasColumn(name string) bool { return d.columns[name] }

// Categories devuelve las categorías no vacías en orden de primera aparición.
func (d *Dataset) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range d.records {
		if r.ProductCategory == "" || seen[r.ProductCategory] {
			continue
		}
		seen[r.ProductCategory] = true
		out = append(out, r.ProductCategory)
	}
	return out
}

// MaxPrice precio máximo del dataset (cero si está vacío).
func (d *Dataset) MaxPrice() decimal.Decimal {
	max := decimal.Zero
	for i, r := range d.records {
		if i == 0 || r.Price.GreaterThan(max) {
			max = r.Price
		}
	}
	return max
}
