// Package etree writes course records as an XML spreadsheet
// (SpreadsheetML 2003) that Excel and LibreOffice open directly.
package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/coursetab"
)

// Ensure Writer implements coursetab.CourseWriter at compile time.
var _ coursetab.CourseWriter = (*Writer)(nil)

const spreadsheetNS = "urn:schemas-microsoft-com:office:spreadsheet"

// numericColumns are written as Number cells when non-empty.
var numericColumns = map[string]bool{
	string(coursetab.FieldCredits): true,
	string(coursetab.FieldCap):     true,
}

// Writer produces a single-worksheet workbook with a header row.
type Writer struct {
	SheetName string
}

// NewWriter returns a Writer with a "Courses" worksheet.
func NewWriter() *Writer {
	return &Writer{SheetName: "Courses"}
}

// WriteCourses writes courses to out.
func (w *Writer) WriteCourses(out io.Writer, courses []*coursetab.Course) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	book := doc.CreateElement("Workbook")
	book.CreateAttr("xmlns", spreadsheetNS)
	book.CreateAttr("xmlns:ss", spreadsheetNS)

	sheet := book.CreateElement("Worksheet")
	name := w.SheetName
	if name == "" {
		name = "Courses"
	}
	sheet.CreateAttr("ss:Name", name)
	table := sheet.CreateElement("Table")

	header := table.CreateElement("Row")
	for _, col := range coursetab.Header {
		addCell(header, "String", col)
	}

	for _, c := range courses {
		row := table.CreateElement("Row")
		for i, v := range c.Cells("\n") {
			typ := "String"
			if numericColumns[coursetab.Header[i]] && v != "" {
				typ = "Number"
			}
			addCell(row, typ, v)
		}
	}

	doc.Indent(1)
	_, err := doc.WriteTo(out)
	return err
}

func addCell(row *etree.Element, typ, value string) {
	data := row.CreateElement("Cell").CreateElement("Data")
	data.CreateAttr("ss:Type", typ)
	data.SetText(value)
}
