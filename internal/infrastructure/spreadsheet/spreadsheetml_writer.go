// Package spreadsheet exporta la tabla filtrada como libro SpreadsheetML 2003 (XML),
// que Excel y LibreOffice abren directamente.
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	appdashboard "github.com/jhoicas/inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
)

const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	sheetName     = "Inventario"
	headerStyleID = "header"
)

var _ appdashboard.SpreadsheetWriter = (*XMLWriter)(nil)

// XMLWriter implementa dashboard.SpreadsheetWriter con beevik/etree.
type XMLWriter struct{}

// NewXMLWriter construye el writer.
func NewXMLWriter() *XMLWriter { return &XMLWriter{} }

// WriteSpreadsheet genera el libro: una hoja con encabezados y una fila por producto.
// Los números se escriben con tipo Number; un rating nulo deja la celda vacía.
func (w *XMLWriter) WriteSpreadsheet(_ context.Context, report appdashboard.ExportReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	book := doc.CreateElement("Workbook")
	book.CreateAttr("xmlns", nsSpreadsheet)
	book.CreateAttr("xmlns:ss", nsSpreadsheet)

	props := book.CreateElement("DocumentProperties")
	props.CreateAttr("xmlns", "urn:schemas-microsoft-com:office:office")
	props.CreateElement("Title").SetText(report.Title)
	props.CreateElement("Created").SetText(report.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"))

	style := book.CreateElement("Styles").CreateElement("Style")
	style.CreateAttr("ss:ID", headerStyleID)
	style.CreateElement("Font").CreateAttr("ss:Bold", "1")

	sheet := book.CreateElement("Worksheet")
	sheet.CreateAttr("ss:Name", sheetName)
	table := sheet.CreateElement("Table")

	header := table.CreateElement("Row")
	for _, c := range report.Columns {
		cell := header.CreateElement("Cell")
		cell.CreateAttr("ss:StyleID", headerStyleID)
		addData(cell, "String", c)
	}

	for _, r := range report.Rows {
		writeRow(table.CreateElement("Row"), r)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet: serializar: %w", err)
	}
	return out, nil
}

func writeRow(row *etree.Element, r dto.ProductRowDTO) {
	addData(row.CreateElement("Cell"), "String", r.ProductName)
	addData(row.CreateElement("Cell"), "String", r.ProductCategory)
	addData(row.CreateElement("Cell"), "Number", r.Price.String())
	addData(row.CreateElement("Cell"), "Number", strconv.FormatInt(r.StockQuantity, 10))
	rating := row.CreateElement("Cell")
	if r.ProductRatings.Valid {
		addData(rating, "Number", r.ProductRatings.Decimal.String())
	}
}

func addData(cell *etree.Element, typ, value string) {
	data := cell.CreateElement("Data")
	data.CreateAttr("ss:Type", typ)
	data.SetText(value)
}
