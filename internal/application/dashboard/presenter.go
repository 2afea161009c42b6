package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
)

// NotAvailable marcador para métricas indefinidas (media de un conjunto vacío).
const NotAvailable = "N/A"

// TableColumns encabezados de la tabla visible y de todas las exportaciones, en orden.
var TableColumns = []string{"Product Name", "Product Category", "Price", "Stock Quantity", "Product Ratings"}

var printer = message.NewPrinter(language.English)

// FormatCurrency "$1,234.56" o "N/A".
func FormatCurrency(v decimal.NullDecimal) string {
	if !v.Valid {
		return NotAvailable
	}
	return printer.Sprintf("$%.2f", v.Decimal.Round(2).InexactFloat64())
}

// FormatRating "4.25" o "N/A".
func FormatRating(v decimal.NullDecimal) string {
	if !v.Valid {
		return NotAvailable
	}
	return v.Decimal.StringFixed(2)
}

// PresentMetrics métricas escalares de la vista filtrada.
func PresentMetrics(view []entity.Record) dto.SummaryMetricsDTO {
	price := inventory.MeanPrice(view)
	rating := inventory.MeanRating(view)
	return dto.SummaryMetricsDTO{
		AvgPrice:      FormatCurrency(price),
		TotalProducts: inventory.TotalProducts(view),
		AvgRating:     FormatRating(rating),
		AvgPriceRaw:   price,
		AvgRatingRaw:  rating,
	}
}

// PresentCounts convierte conteos por categoría en una serie de barras.
func PresentCounts(counts []inventory.CategoryCount) dto.BarSeriesDTO {
	s := dto.BarSeriesDTO{Labels: make([]string, 0, len(counts)), Values: make([]int, 0, len(counts))}
	for _, c := range counts {
		s.Labels = append(s.Labels, c.Category)
		s.Values = append(s.Values, c.Count)
	}
	return s
}

// PresentHeatmap matriz de stock con ejes x=categorías, y=ubicaciones.
func PresentHeatmap(m inventory.StockMatrix) dto.HeatmapDTO {
	return dto.HeatmapDTO{X: m.Categories, Y: m.Locations, Z: m.Cells}
}

// PresentPriceDistribution grupos de precios listos para un diagrama de caja.
func PresentPriceDistribution(groups []inventory.PriceGroup) []dto.BoxGroupDTO {
	out := make([]dto.BoxGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.BoxGroupDTO{
			Category: g.Category,
			Prices:   g.Prices,
			Min:      g.Summary.Min,
			Q1:       g.Summary.Q1,
			Median:   g.Summary.Median,
			Q3:       g.Summary.Q3,
			Max:      g.Summary.Max,
		})
	}
	return out
}

// PresentLowStock barras del ranking de stock bajo.
func PresentLowStock(records []entity.Record) []dto.LowStockItemDTO {
	out := make([]dto.LowStockItemDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.LowStockItemDTO{
			ProductName:     r.ProductName,
			ProductCategory: r.ProductCategory,
			StockQuantity:   r.StockQuantity,
		})
	}
	return out
}

// PresentFastMoving histograma del segmento fast-moving.
func PresentFastMoving(fm inventory.FastMoving) dto.FastMovingDTO {
	return dto.FastMovingDTO{
		MedianStock: fm.Median,
		Total:       len(fm.Records),
		ByCategory:  PresentCounts(fm.Counts),
	}
}

// PresentRows proyecta la vista a las cinco columnas visibles.
func PresentRows(view []entity.Record) []dto.ProductRowDTO {
	out := make([]dto.ProductRowDTO, 0, len(view))
	for _, r := range view {
		out = append(out, dto.ProductRowDTO{
			ProductName:     r.ProductName,
			ProductCategory: r.ProductCategory,
			Price:           r.Price,
			StockQuantity:   r.StockQuantity,
			ProductRatings:  r.ProductRatings,
		})
	}
	return out
}

// PresentFilter criterio aplicado en forma serializable. Las categorías siguen el orden
// de order; las que no aparecen en order van al final, ordenadas alfabéticamente.
func PresentFilter(c entity.FilterCriteria, order []string) dto.FilterDTO {
	cats := make([]string, 0, len(c.Categories))
	seen := make(map[string]bool, len(c.Categories))
	for _, cat := range order {
		if _, ok := c.Categories[cat]; ok && !seen[cat] {
			cats = append(cats, cat)
			seen[cat] = true
		}
	}
	var extra []string
	for cat := range c.Categories {
		if !seen[cat] {
			extra = append(extra, cat)
		}
	}
	sort.Strings(extra)
	cats = append(cats, extra...)
	return dto.FilterDTO{
		Categories: cats,
		PriceMin:   c.PriceMin,
		PriceMax:   c.PriceMax,
		RatingMin:  c.RatingMin,
		RatingMax:  c.RatingMax,
	}
}

// PresentDashboard arma la respuesta completa. view debe ser no vacía.
// Las vistas globales usan ds completo, no la vista filtrada.
func PresentDashboard(ds *entity.Dataset, filter dto.FilterDTO, view []entity.Record) *dto.DashboardDTO {
	metrics := PresentMetrics(view)
	counts := PresentCounts(inventory.CategoryCounts(view))
	fast := PresentFastMoving(inventory.FastMovingSegment(ds))

	out := &dto.DashboardDTO{
		DatasetID:         ds.ID(),
		LoadedAt:          ds.LoadedAt(),
		Filter:            filter,
		Metrics:           &metrics,
		CategoryCounts:    &counts,
		PriceDistribution: PresentPriceDistribution(inventory.PriceDistribution(view)),
		Table:             PresentRows(view),
		LowStock:          PresentLowStock(inventory.LowStockRanking(ds)),
		FastMoving:        &fast,
	}
	if m, ok := inventory.StockByLocationCategory(ds); ok {
		h := PresentHeatmap(m)
		out.StockHeatmap = &h
	}
	return out
}
