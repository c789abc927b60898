package mock

import (
	"context"
	"io"

	"github.com/fwojciec/coursetab"
)

var _ coursetab.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of coursetab.DocumentSource.
type DocumentSource struct {
	DocumentsFn func(ctx context.Context, paths []string) ([]*coursetab.Document, error)
}

func (s *DocumentSource) Documents(ctx context.Context, paths []string) ([]*coursetab.Document, error) {
	return s.DocumentsFn(ctx, paths)
}

var _ coursetab.CourseWriter = (*CourseWriter)(nil)

// CourseWriter is a mock implementation of coursetab.CourseWriter.
type CourseWriter struct {
	WriteCoursesFn func(w io.Writer, courses []*coursetab.Course) error
}

func (cw *CourseWriter) WriteCourses(w io.Writer, courses []*coursetab.Course) error {
	return cw.WriteCoursesFn(w, courses)
}
