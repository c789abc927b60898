package mock

import (
	"iter"

	"github.com/fwojciec/coursetab"
)

var _ coursetab.Parser = (*Parser)(nil)

// Parser is a mock implementation of coursetab.Parser.
type Parser struct {
	ParseFn func(html, source string) ([]*coursetab.Course, error)
}

func (p *Parser) Parse(html, source string) ([]*coursetab.Course, error) {
	return p.ParseFn(html, source)
}

var _ coursetab.RowExtractor = (*RowExtractor)(nil)

// RowExtractor is a mock implementation of coursetab.RowExtractor.
type RowExtractor struct {
	ExtractRowsFn func(html, source string) (iter.Seq[coursetab.Row], error)
}

func (e *RowExtractor) ExtractRows(html, source string) (iter.Seq[coursetab.Row], error) {
	return e.ExtractRowsFn(html, source)
}
