package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/coursetab"
)

var _ coursetab.CourseWriter = (*LoggingCourseWriter)(nil)

// LoggingCourseWriter wraps a CourseWriter with logging.
type LoggingCourseWriter struct {
	next   coursetab.CourseWriter
	format string
	logger *slog.Logger
}

// NewLoggingCourseWriter creates a new LoggingCourseWriter. Format is only
// used as a log attribute.
func NewLoggingCourseWriter(next coursetab.CourseWriter, format string, logger *slog.Logger) *LoggingCourseWriter {
	return &LoggingCourseWriter{next: next, format: format, logger: logger}
}

func (w *LoggingCourseWriter) WriteCourses(out io.Writer, courses []*coursetab.Course) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write courses",
			"format", w.format,
			"count", len(courses),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteCourses(out, courses)
}
