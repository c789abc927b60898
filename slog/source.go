package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursetab"
)

// Ensure LoggingDocumentSource implements coursetab.DocumentSource.
var _ coursetab.DocumentSource = (*LoggingDocumentSource)(nil)

// LoggingDocumentSource wraps a DocumentSource with logging.
type LoggingDocumentSource struct {
	next   coursetab.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next coursetab.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// Documents delegates to the wrapped source and logs the operation.
func (s *LoggingDocumentSource) Documents(ctx context.Context, paths []string) (docs []*coursetab.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load documents",
			"paths", len(paths),
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Documents(ctx, paths)
}
