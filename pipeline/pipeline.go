// Package pipeline turns HTML exports into reconciled course records.
// It composes row extraction, record building, teaching-assistant merging
// and sequence-number deduplication, and runs them over batches of
// documents.
package pipeline

import (
	"github.com/fwojciec/coursetab"
)

// Ensure Parser implements coursetab.Parser at compile time.
var _ coursetab.Parser = (*Parser)(nil)

// Parser runs the single-document pipeline:
// extract → build → merge assistants (optional) → dedupe by seq.
type Parser struct {
	Extractor coursetab.RowExtractor
	Builder   *coursetab.Builder

	// MergeAssistants folds teaching-assistant rows into their course.
	MergeAssistants bool
}

// NewParser returns a Parser that merges assistant rows.
func NewParser(extractor coursetab.RowExtractor, builder *coursetab.Builder) *Parser {
	return &Parser{
		Extractor:       extractor,
		Builder:         builder,
		MergeAssistants: true,
	}
}

// Parse converts one document into its final course records.
func (p *Parser) Parse(html, source string) ([]*coursetab.Course, error) {
	if source == "" {
		return nil, coursetab.Errorf(coursetab.EINVALID, "source required")
	}

	rows, err := p.Extractor.ExtractRows(html, source)
	if err != nil {
		return nil, err
	}

	builder := p.Builder
	if builder == nil {
		builder = coursetab.NewBuilder()
	}

	courses := []*coursetab.Course{}
	for row := range rows {
		courses = append(courses, builder.Build(row))
	}

	if p.MergeAssistants {
		courses = coursetab.MergeAssistants(courses)
	}
	return coursetab.DedupeBySeq(courses), nil
}
