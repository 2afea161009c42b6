package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

// WriteCSV serializa las filas con los encabezados de TableColumns.
// Un rating nulo se escribe como celda vacía.
func WriteCSV(w io.Writer, rows []dto.ProductRowDTO) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableColumns); err != nil {
		return fmt.Errorf("csv: encabezados: %w", err)
	}
	for _, r := range rows {
		rating := ""
		if r.ProductRatings.Valid {
			rating = r.ProductRatings.Decimal.String()
		}
		record := []string{
			r.ProductName,
			r.ProductCategory,
			r.Price.String(),
			strconv.FormatInt(r.StockQuantity, 10),
			rating,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv: fila %q: %w", r.ProductName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeCSV igual que WriteCSV pero devuelve los bytes.
func EncodeCSV(rows []dto.ProductRowDTO) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
