package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

const lowStockLimit = 10 // tamaño del ranking de stock bajo

// ── Tipos de resultado ────────────────────────────────────────────────────────

// CategoryCount número de registros de una categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// StockMatrix suma de stock pivotada ubicación × categoría.
// Cells[i][j] es nil si no hay registros para (Locations[i], Categories[j]).
type StockMatrix struct {
	Locations  []string
	Categories []string
	Cells      [][]*int64
}

// FiveNumberSummary resumen para diagramas de caja.
type FiveNumberSummary struct {
	Min    decimal.Decimal
	Q1     decimal.Decimal
	Median decimal.Decimal
	Q3     decimal.Decimal
	Max    decimal.Decimal
}

// PriceGroup precios de una categoría en el orden del dataset.
type PriceGroup struct {
	Category string
	Prices   []decimal.Decimal
	Summary  FiveNumberSummary
}

// FastMoving segmento de productos con stock por debajo de la mediana global.
type FastMoving struct {
	Median  decimal.Decimal
	Records []entity.Record
	Counts  []CategoryCount
}

// ── Sobre la vista filtrada ───────────────────────────────────────────────────

// TotalProducts número de registros de la vista.
func TotalProducts(view []entity.Record) int { return len(view) }

// CategoryCounts cuenta registros por categoría. Orden: mayor conteo primero,
// empates por primera aparición. Las etiquetas se conservan tal cual.
func CategoryCounts(view []entity.Record) []CategoryCount {
	return countByCategory(view)
}

// MeanPrice media aritmética del precio. Valid=false si la vista está vacía.
func MeanPrice(view []entity.Record) decimal.NullDecimal {
	values := make([]decimal.Decimal, 0, len(view))
	for _, r := range view {
		values = append(values, r.Price)
	}
	return mean(values)
}

// MeanRating media de los ratings no nulos. Valid=false si no hay ninguno.
func MeanRating(view []entity.Record) decimal.NullDecimal {
	values := make([]decimal.Decimal, 0, len(view))
	for _, r := range view {
		if r.ProductRatings.Valid {
			values = append(values, r.ProductRatings.Decimal)
		}
	}
	return mean(values)
}

// PriceDistribution agrupa los precios por categoría (orden de primera aparición).
func PriceDistribution(view []entity.Record) []PriceGroup {
	index := make(map[string]int)
	var groups []PriceGroup
	for _, r := range view {
		i, ok := index[r.ProductCategory]
		if !ok {
			i = len(groups)
			index[r.ProductCategory] = i
			groups = append(groups, PriceGroup{Category: r.ProductCategory})
		}
		groups[i].Prices = append(groups[i].Prices, r.Price)
	}
	for i := range groups {
		groups[i].Summary = fiveNumberSummary(groups[i].Prices)
	}
	return groups
}

// ── Sobre el dataset completo (ignoran el filtro) ─────────────────────────────

// StockByLocationCategory suma StockQuantity por (ubicación, categoría) sobre todo el dataset.
// Devuelve false si el dataset no trae la columna de ubicación. Los registros sin
// ubicación o sin categoría se excluyen.
func StockByLocationCategory(ds *entity.Dataset) (StockMatrix, bool) {
	if ds == nil || !ds.HasColumn(entity.ColWarehouseLocation) {
		return StockMatrix{}, false
	}

	type key struct{ loc, cat string }
	sums := make(map[key]int64)
	locSet := make(map[string]bool)
	catSet := make(map[string]bool)
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		if !r.HasLocation() || r.ProductCategory == "" {
			continue
		}
		sums[key{r.WarehouseLocation, r.ProductCategory}] += r.StockQuantity
		locSet[r.WarehouseLocation] = true
		catSet[r.ProductCategory] = true
	}

	m := StockMatrix{
		Locations:  sortedKeys(locSet),
		Categories: sortedKeys(catSet),
	}
	m.Cells = make([][]*int64, len(m.Locations))
	for i, loc := range m.Locations {
		m.Cells[i] = make([]*int64, len(m.Categories))
		for j, cat := range m.Categories {
			if v, ok := sums[key{loc, cat}]; ok {
				v := v
				m.Cells[i][j] = &v
			}
		}
	}
	return m, true
}

// LowStockRanking los 10 registros con menor stock del dataset completo.
// Orden estable: ante empates se respeta el orden original.
func LowStockRanking(ds *entity.Dataset) []entity.Record {
	if ds == nil {
		return []entity.Record{}
	}
	records := ds.Records()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StockQuantity < records[j].StockQuantity
	})
	if len(records) > lowStockLimit {
		records = records[:lowStockLimit]
	}
	return records
}

// MedianStock mediana de StockQuantity del dataset completo. false si está vacío.
func MedianStock(ds *entity.Dataset) (decimal.Decimal, bool) {
	if ds == nil || ds.Len() == 0 {
		return decimal.Zero, false
	}
	values := make([]decimal.Decimal, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		values[i] = decimal.NewFromInt(ds.At(i).StockQuantity)
	}
	sortDecimals(values)
	return quantile(values, decimal.NewFromFloat(0.5)), true
}

// FastMovingSegment registros con stock estrictamente menor que la mediana global,
// más su conteo por categoría.
func FastMovingSegment(ds *entity.Dataset) FastMoving {
	median, ok := MedianStock(ds)
	if !ok {
		return FastMoving{Records: []entity.Record{}}
	}
	out := FastMoving{Median: median, Records: make([]entity.Record, 0)}
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		if decimal.NewFromInt(r.StockQuantity).LessThan(median) {
			out.Records = append(out.Records, r)
		}
	}
	out.Counts = countByCategory(out.Records)
	return out
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func countByCategory(records []entity.Record) []CategoryCount {
	index := make(map[string]int)
	counts := make([]CategoryCount, 0)
	for _, r := range records {
		i, ok := index[r.ProductCategory]
		if !ok {
			i = len(counts)
			index[r.ProductCategory] = i
			counts = append(counts, CategoryCount{Category: r.ProductCategory})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts
}

func mean(values []decimal.Decimal) decimal.NullDecimal {
	if len(values) == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.Sum(values[0], values[1:]...).Div(decimal.NewFromInt(int64(len(values)))))
}

func fiveNumberSummary(values []decimal.Decimal) FiveNumberSummary {
	if len(values) == 0 {
		return FiveNumberSummary{}
	}
	sorted := make([]decimal.Decimal, len(values))
	copy(sorted, values)
	sortDecimals(sorted)
	return FiveNumberSummary{
		Min:    sorted[0],
		Q1:     quantile(sorted, decimal.NewFromFloat(0.25)),
		Median: quantile(sorted, decimal.NewFromFloat(0.5)),
		Q3:     quantile(sorted, decimal.NewFromFloat(0.75)),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile interpolación lineal sobre valores ya ordenados: pos = q × (n-1).
func quantile(sorted []decimal.Decimal, q decimal.Decimal) decimal.Decimal {
	pos := q.Mul(decimal.NewFromInt(int64(len(sorted) - 1)))
	lo := pos.Floor()
	i := int(lo.IntPart())
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos.Sub(lo)
	return sorted[i].Add(sorted[i+1].Sub(sorted[i]).Mul(frac))
}

func sortDecimals(values []decimal.Decimal) {
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
