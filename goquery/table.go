// Package goquery implements table extraction over registration-system
// HTML exports using goquery.
package goquery

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursetab"
	"golang.org/x/net/html"
	"golang.org/x/text/width"
)

// Ensure TableExtractor implements coursetab.RowExtractor at compile time.
var _ coursetab.RowExtractor = (*TableExtractor)(nil)

// DeptHeaderPattern matches the department/block header cell of an export,
// e.g. "系別(Department)：資工系". The full-width colon is part of the format.
var DeptHeaderPattern = regexp.MustCompile(`^系別\(Department\)：(.*)$`)

var gradeRe = regexp.MustCompile(`[0-9一二三四五六七八九十]`)

// TableExtractor yields data rows from every <tr> of a document.
//
// A row whose first cell matches HeaderPattern starts a new department
// block. A row is a data row when it has exactly Columns cells, its first
// cell looks like a grade and a block header has been seen. Everything
// else is skipped.
type TableExtractor struct {
	Columns       int
	HeaderPattern *regexp.Regexp
}

// NewTableExtractor returns a TableExtractor for the default 15-column layout.
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{
		Columns:       coursetab.DefaultSchema.Width(),
		HeaderPattern: DeptHeaderPattern,
	}
}

// ExtractRows parses markup and returns its data rows in document order.
// The returned sequence carries its own block label, so it can be
// iterated more than once.
func (e *TableExtractor) ExtractRows(markup, source string) (iter.Seq[coursetab.Row], error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, coursetab.Errorf(coursetab.EINVALID, "failed to parse HTML from %s: %v", source, err)
	}

	// Line breaks separate words inside a cell.
	for _, n := range doc.Find("br").Nodes {
		if n.Parent != nil {
			n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: " "}, n)
			n.Parent.RemoveChild(n)
		}
	}

	rows := doc.Find("tr")
	return func(yield func(coursetab.Row) bool) {
		var label string
		var active bool
		for _, tr := range rows.EachIter() {
			cells := cellTexts(tr)
			if len(cells) == 0 {
				continue
			}

			if m := e.HeaderPattern.FindStringSubmatch(cells[0]); m != nil {
				label = strings.TrimSpace(m[1])
				active = true
				continue
			}

			if !active || len(cells) != e.Columns || !isGradeLike(cells[0]) {
				continue
			}

			if !yield(coursetab.Row{Cells: cells, DeptBlock: label, Source: source}) {
				return
			}
		}
	}, nil
}

// cellTexts returns the flattened, whitespace-collapsed text of each
// direct cell of a row.
func cellTexts(tr *goquery.Selection) []string {
	sel := tr.ChildrenFiltered("td, th")
	cells := make([]string, 0, sel.Length())
	sel.Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
	})
	return cells
}

// isGradeLike reports whether s looks like a grade value such as "1" or "一".
func isGradeLike(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > 4 {
		return false
	}
	return gradeRe.MatchString(width.Fold.String(s))
}
