// Package slog provides logging decorators for coursetab services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/coursetab"
)

// Ensure LoggingParser implements coursetab.Parser.
var _ coursetab.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   coursetab.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next coursetab.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(html, source string) (courses []*coursetab.Course, err error) {
	defer func(begin time.Time) {
		var assistants int
		for _, c := range courses {
			if c.IsAssistant() {
				assistants++
			}
		}
		p.logger.Info("parse document",
			"source", source,
			"bytes", len(html),
			"courses", len(courses),
			"unmerged_assistants", assistants,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html, source)
}
