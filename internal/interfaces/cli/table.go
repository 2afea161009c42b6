// Package cli presenta el dashboard en la terminal: tablas alineadas y secciones coloreadas.
package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment justificación del contenido de una columna.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ColorFunc colorea el valor de una celda. nil = sin color.
type ColorFunc func(value string) string

// Column definición de una columna.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table tabla de texto con anchos calculados.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable crea una tabla con las columnas indicadas.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow agrega una fila; los valores sobrantes se ignoran y los faltantes quedan vacíos.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Len número de filas.
func (t *Table) Len() int { return len(t.rows) }

// Render escribe encabezado, separador y filas.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = width(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := width(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(bold.Sprint(col.Header), width(col.Header), widths[i], col.Align)
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	if err := writeLine(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			display := row[i]
			if col.Color != nil {
				display = col.Color(row[i])
			}
			// El relleno se calcula sobre el valor sin secuencias ANSI.
			parts[i] = pad(display, width(row[i]), widths[i], col.Align)
		}
		if err := writeLine(w, parts); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func pad(display string, n, w int, a Alignment) string {
	fill := strings.Repeat(" ", max(w-n, 0))
	if a == AlignRight {
		return fill + display
	}
	return display + fill
}

// width en runas: los nombres de producto traen tildes.
func width(s string) int { return utf8.RuneCountInString(s) }
