package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// RenderDashboard imprime el resumen del dashboard con las mismas vistas que la API.
// La tabla de detalle solo con withRows.
func RenderDashboard(w io.Writer, d *dto.DashboardDTO, withRows bool) error {
	p := &printer{w: w}

	p.line(SectionTitle("Filtro"))
	p.line("  Categorías: %s", strings.Join(d.Filter.Categories, ", "))
	p.line("  Precio:     %s .. %s", d.Filter.PriceMin, d.Filter.PriceMax)
	p.line("  Rating:     %s .. %s", d.Filter.RatingMin, d.Filter.RatingMax)
	p.line("")

	if d.NoData {
		p.line("%s", colorYellow.Sprint(d.Message))
		return p.err
	}

	if m := d.Metrics; m != nil {
		p.line(SectionTitle("Resumen"))
		p.line("  Productos:       %s", ColorMetric(strconv.Itoa(m.TotalProducts)))
		p.line("  Precio promedio: %s", ColorMetric(m.AvgPrice))
		p.line("  Rating promedio: %s", ColorMetric(m.AvgRating))
		p.line("")
	}

	if c := d.CategoryCounts; c != nil {
		p.line(SectionTitle("Productos por categoría"))
		t := NewTable(Column{Header: "Categoría"}, Column{Header: "Productos", Align: AlignRight})
		for i, label := range c.Labels {
			t.AddRow(label, strconv.Itoa(c.Values[i]))
		}
		p.table(t)
	}

	if len(d.PriceDistribution) > 0 {
		p.line(SectionTitle("Distribución de precios"))
		t := NewTable(
			Column{Header: "Categoría"},
			Column{Header: "Min", Align: AlignRight},
			Column{Header: "Q1", Align: AlignRight},
			Column{Header: "Mediana", Align: AlignRight},
			Column{Header: "Q3", Align: AlignRight},
			Column{Header: "Max", Align: AlignRight},
		)
		for _, g := range d.PriceDistribution {
			t.AddRow(g.Category, g.Min.StringFixed(2), g.Q1.StringFixed(2), g.Median.StringFixed(2), g.Q3.StringFixed(2), g.Max.StringFixed(2))
		}
		p.table(t)
	}

	if hm := d.StockHeatmap; hm != nil {
		p.line(SectionTitle("Stock por ubicación (inventario completo)"))
		p.table(heatmapTable(hm))
	}

	if len(d.LowStock) > 0 {
		p.line(SectionTitle("Stock bajo (top 10, inventario completo)"))
		t := NewTable(
			Column{Header: "Producto"},
			Column{Header: "Categoría"},
			Column{Header: "Stock", Align: AlignRight, Color: ColorStock},
		)
		for _, it := range d.LowStock {
			t.AddRow(it.ProductName, it.ProductCategory, strconv.FormatInt(it.StockQuantity, 10))
		}
		p.table(t)
	}

	if fm := d.FastMoving; fm != nil {
		p.line(SectionTitle("Fast-moving (stock < mediana %s)"), fm.MedianStock)
		t := NewTable(Column{Header: "Categoría"}, Column{Header: "Productos", Align: AlignRight})
		for i, label := range fm.ByCategory.Labels {
			t.AddRow(label, strconv.Itoa(fm.ByCategory.Values[i]))
		}
		p.table(t)
	}

	if withRows {
		p.line(SectionTitle("Productos filtrados"))
		t := NewTable(
			Column{Header: dashboard.TableColumns[0]},
			Column{Header: dashboard.TableColumns[1]},
			Column{Header: dashboard.TableColumns[2], Align: AlignRight},
			Column{Header: dashboard.TableColumns[3], Align: AlignRight, Color: ColorStock},
			Column{Header: dashboard.TableColumns[4], Align: AlignRight},
		)
		for _, r := range d.Table {
			rating := ""
			if r.ProductRatings.Valid {
				rating = r.ProductRatings.Decimal.String()
			}
			t.AddRow(r.ProductName, r.ProductCategory, r.Price.String(), strconv.FormatInt(r.StockQuantity, 10), rating)
		}
		p.table(t)
	}
	return p.err
}

// heatmapTable una fila por ubicación y una columna por categoría. Sin stock: "-".
func heatmapTable(hm *dto.HeatmapDTO) *Table {
	cols := make([]Column, 0, len(hm.X)+1)
	cols = append(cols, Column{Header: "Ubicación"})
	for _, cat := range hm.X {
		cols = append(cols, Column{Header: cat, Align: AlignRight})
	}
	t := NewTable(cols...)
	for i, loc := range hm.Y {
		row := make([]string, 0, len(hm.X)+1)
		row = append(row, loc)
		for j := range hm.X {
			cell := "-"
			if i < len(hm.Z) && j < len(hm.Z[i]) && hm.Z[i][j] != nil {
				cell = strconv.FormatInt(*hm.Z[i][j], 10)
			}
			row = append(row, cell)
		}
		t.AddRow(row...)
	}
	return t
}

// printer acumula el primer error de escritura.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) table(t *Table) {
	if p.err != nil {
		return
	}
	if p.err = t.Render(p.w); p.err == nil {
		p.line("")
	}
}
