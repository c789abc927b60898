// Package htmltomarkdown writes course records as a Markdown table.
package htmltomarkdown

import (
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/coursetab"
	"golang.org/x/net/html"
)

// Ensure Writer implements coursetab.CourseWriter at compile time.
var _ coursetab.CourseWriter = (*Writer)(nil)

// Writer renders courses into an HTML table and converts it to Markdown.
type Writer struct {
	conv *converter.Converter
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Writer{conv: conv}
}

// WriteCourses writes a Markdown table with a header row to out.
func (w *Writer) WriteCourses(out io.Writer, courses []*coursetab.Course) error {
	md, err := w.conv.ConvertString(renderTable(courses))
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, strings.TrimSpace(md)+"\n")
	return err
}

// renderTable builds the HTML table handed to the converter.
func renderTable(courses []*coursetab.Course) string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, col := range coursetab.Header {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, c := range courses {
		b.WriteString("<tr>")
		for _, v := range c.Cells("; ") {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(v))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
