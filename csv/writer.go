// Package csv writes course records as delimited text.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/fwojciec/coursetab"
)

// Ensure Writer implements coursetab.CourseWriter at compile time.
var _ coursetab.CourseWriter = (*Writer)(nil)

// TimesSeparator joins the meeting times of a record into one cell.
const TimesSeparator = "|"

// Writer writes a header row followed by one row per course.
type Writer struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune

	// BOM prefixes the output with a UTF-8 byte order mark so that
	// spreadsheet applications detect the encoding.
	BOM bool
}

// NewWriter returns a comma-separated Writer with a byte order mark.
func NewWriter() *Writer {
	return &Writer{Comma: ',', BOM: true}
}

// WriteCourses writes courses to out.
func (w *Writer) WriteCourses(out io.Writer, courses []*coursetab.Course) error {
	if w.BOM {
		if _, err := io.WriteString(out, "\ufeff"); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(out)
	if w.Comma != 0 {
		cw.Comma = w.Comma
	}

	if err := cw.Write(coursetab.Header); err != nil {
		return err
	}
	for _, c := range courses {
		if err := cw.Write(c.Cells(TimesSeparator)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
