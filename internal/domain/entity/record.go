package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nombres canónicos de columnas del archivo de inventario.
const (
	ColProductName       = "ProductName"
	ColProductCategory   = "ProductCategory"
	ColPrice             = "Price"
	ColStockQuantity     = "StockQuantity"
	ColProductRatings    = "ProductRatings"
	ColManufacturingDate = "ManufacturingDate"
	ColExpirationDate    = "ExpirationDate"
	ColLastUpdate        = "LastUpdate"
	ColWarehouseLocation = "WarehouseLocation"
)

// RequiredColumns columnas sin las cuales la carga falla.
var RequiredColumns = []string{
	ColProductName, ColProductCategory, ColPrice, ColStockQuantity, ColProductRatings,
}

// OptionalColumns columnas cuya ausencia solo desactiva la funcionalidad asociada.
var OptionalColumns = []string{
	ColManufacturingDate, ColExpirationDate, ColLastUpdate, ColWarehouseLocation,
}

// Record representa una fila del inventario.
// Las fechas y el rating son nulos (nil / Valid=false) cuando el valor no se pudo interpretar.
type Record struct {
	ProductName       string
	ProductCategory   string
	Price             decimal.Decimal     // >= 0
	StockQuantity     int64               // >= 0
	ProductRatings    decimal.NullDecimal // 0–5, nulo si no es numérico
	ManufacturingDate *time.Time
	ExpirationDate    *time.Time
	LastUpdate        *time.Time
	WarehouseLocation string // vacío = sin ubicación

	// Columnas derivadas (se calculan una sola vez al cargar)
	ManufacturingYear   *int
	WarehouseLastUpdate *time.Time
}

// HasLocation indica si el registro tiene bodega asignada.
func (r Record) HasLocation() bool { return r.WarehouseLocation != "" }
