package cli

import (
	"strconv"

	"github.com/fatih/color"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
)

var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
)

// lowStockThreshold por debajo de este stock la cantidad se marca en rojo.
const lowStockThreshold = 5

// SectionTitle título de sección en negrita.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ColorStock rojo si el stock es crítico, amarillo si es bajo.
func ColorStock(val string) string {
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return val
	}
	switch {
	case n < lowStockThreshold:
		return colorRed.Sprint(val)
	case n < 2*lowStockThreshold:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// ColorMetric resalta un valor; "N/A" queda en amarillo.
func ColorMetric(val string) string {
	if val == dashboard.NotAvailable {
		return colorYellow.Sprint(val)
	}
	return colorCyan.Sprint(val)
}

// ColorOK mensaje de éxito.
func ColorOK(val string) string {
	return colorGreen.Sprint(val)
}
