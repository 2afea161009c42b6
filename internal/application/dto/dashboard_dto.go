package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// FilterRequest filtros elegidos por el usuario. Los campos nil toman el valor por defecto
// (precio 0..máximo del dataset, rating 0..5). Si CategoriesSet es false se incluyen todas
// las categorías; si es true se usan exactamente Categories (posiblemente vacío).
// No se valida que min <= max: un rango invertido produce una vista vacía.
type FilterRequest struct {
	Categories    []string
	CategoriesSet bool
	PriceMin      *float64 `validate:"omitempty,gte=0"`
	PriceMax      *float64 `validate:"omitempty,gte=0"`
	RatingMin     *float64 `validate:"omitempty,gte=0,lte=5"`
	RatingMax     *float64 `validate:"omitempty,gte=0,lte=5"`
}

// FilterDTO criterio efectivamente aplicado.
type FilterDTO struct {
	Categories []string        `json:"categories"`
	PriceMin   decimal.Decimal `json:"price_min"`
	PriceMax   decimal.Decimal `json:"price_max"`
	RatingMin  decimal.Decimal `json:"rating_min"`
	RatingMax  decimal.Decimal `json:"rating_max"`
}

// FilterOptionsDTO respuesta de GET /api/dashboard/options.
type FilterOptionsDTO struct {
	DatasetID  string    `json:"dataset_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	Categories []string  `json:"categories"`
	Defaults   FilterDTO `json:"defaults"`
}

// ── Métricas y series ─────────────────────────────────────────────────────────

// SummaryMetricsDTO métricas escalares del resumen. Las medias indefinidas se muestran como "N/A".
type SummaryMetricsDTO struct {
	AvgPrice      string              `json:"avg_price"`  // ej: "$1,234.56"
	TotalProducts int                 `json:"total_products"`
	AvgRating     string              `json:"avg_rating"` // ej: "4.25"
	AvgPriceRaw   decimal.NullDecimal `json:"avg_price_raw"`
	AvgRatingRaw  decimal.NullDecimal `json:"avg_rating_raw"`
}

// BarSeriesDTO serie categórica (etiqueta → valor) para gráficos de barras e histogramas.
type BarSeriesDTO struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// HeatmapDTO matriz ubicación × categoría. Z[i][j] es null si no hay stock registrado.
type HeatmapDTO struct {
	X []string   `json:"x"` // categorías
	Y []string   `json:"y"` // ubicaciones
	Z [][]*int64 `json:"z"`
}

// BoxGroupDTO distribución de precios de una categoría.
type BoxGroupDTO struct {
	Category string            `json:"category"`
	Prices   []decimal.Decimal `json:"prices"`
	Min      decimal.Decimal   `json:"min"`
	Q1       decimal.Decimal   `json:"q1"`
	Median   decimal.Decimal   `json:"median"`
	Q3       decimal.Decimal   `json:"q3"`
	Max      decimal.Decimal   `json:"max"`
}

// LowStockItemDTO barra del ranking de stock bajo.
type LowStockItemDTO struct {
	ProductName     string `json:"product_name"`
	ProductCategory string `json:"product_category"`
	StockQuantity   int64  `json:"stock_quantity"`
}

// FastMovingDTO segmento fast-moving (stock < mediana global).
type FastMovingDTO struct {
	MedianStock decimal.Decimal `json:"median_stock"`
	Total       int             `json:"total"`
	ByCategory  BarSeriesDTO    `json:"by_category"`
}

// ProductRowDTO fila de la tabla y de la exportación (cinco columnas visibles).
type ProductRowDTO struct {
	ProductName     string              `json:"product_name"`
	ProductCategory string              `json:"product_category"`
	Price           decimal.Decimal     `json:"price"`
	StockQuantity   int64               `json:"stock_quantity"`
	ProductRatings  decimal.NullDecimal `json:"product_ratings"`
}

// ── Respuesta combinada ───────────────────────────────────────────────────────

// DashboardDTO respuesta de GET /api/dashboard.
// Con NoData=true solo se rellenan DatasetID, LoadedAt, Filter y Message.
// StockHeatmap es nil si el dataset no trae ubicación de bodega.
type DashboardDTO struct {
	DatasetID string    `json:"dataset_id"`
	LoadedAt  time.Time `json:"loaded_at"`
	Filter    FilterDTO `json:"filter"`
	NoData    bool      `json:"no_data"`
	Message   string    `json:"message,omitempty"`

	Metrics           *SummaryMetricsDTO `json:"metrics,omitempty"`
	CategoryCounts    *BarSeriesDTO      `json:"category_counts,omitempty"`
	PriceDistribution []BoxGroupDTO      `json:"price_distribution,omitempty"`
	Table             []ProductRowDTO    `json:"table,omitempty"`

	// Vistas globales: se calculan sobre el dataset completo, sin filtro.
	StockHeatmap *HeatmapDTO       `json:"stock_heatmap,omitempty"`
	LowStock     []LowStockItemDTO `json:"low_stock,omitempty"`
	FastMoving   *FastMovingDTO    `json:"fast_moving,omitempty"`
}

// ReloadDTO respuesta de POST /api/dataset/reload.
type ReloadDTO struct {
	DatasetID string    `json:"dataset_id"`
	Source    string    `json:"source"`
	Records   int       `json:"records"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// ExportFile archivo generado para descarga.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
