package coursetab

import (
	"context"
	"io"
	"iter"
	"slices"
)

// Course represents one course-schedule record.
// Nil pointer fields mean the source cell was empty.
type Course struct {
	Source    string   `json:"source"`
	DeptBlock string   `json:"dept_block"`
	Grade     *string  `json:"grade"`
	Seq       *string  `json:"seq"`
	Code      *string  `json:"code"`
	Major     *string  `json:"major"`
	TermOrder *string  `json:"term_order"`
	Class     *string  `json:"class"`
	GroupDiv  *string  `json:"group_div"`
	Required  *string  `json:"required"`
	Credits   *float64 `json:"credits"`
	Group     *string  `json:"group"`
	Title     *string  `json:"title"`
	Cap       *float64 `json:"cap"`
	Teacher   *string  `json:"teacher"`
	Times     []string `json:"times"`

	// Assistant is set when the raw teacher cell carried a TA marker.
	Assistant bool `json:"-"`
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "course source required")
	}
	return nil
}

// Clone returns a deep copy of the course.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := *c
	out.Grade = cloneString(c.Grade)
	out.Seq = cloneString(c.Seq)
	out.Code = cloneString(c.Code)
	out.Major = cloneString(c.Major)
	out.TermOrder = cloneString(c.TermOrder)
	out.Class = cloneString(c.Class)
	out.GroupDiv = cloneString(c.GroupDiv)
	out.Required = cloneString(c.Required)
	out.Credits = cloneFloat(c.Credits)
	out.Group = cloneString(c.Group)
	out.Title = cloneString(c.Title)
	out.Cap = cloneFloat(c.Cap)
	out.Teacher = cloneString(c.Teacher)
	out.Times = slices.Clone(c.Times)
	if out.Times == nil {
		out.Times = []string{}
	}
	return &out
}

// IsAssistant reports whether the course is a teaching-assistant session,
// either flagged at build time or recognizable from the teacher name.
func (c *Course) IsAssistant() bool {
	return c.Assistant || IsTA(Deref(c.Teacher))
}

// Row is one raw data row produced by a RowExtractor.
type Row struct {
	// Cells holds the trimmed text of each cell in column order.
	Cells []string

	// DeptBlock is the department/block label active for this row.
	DeptBlock string

	// Source identifies the originating document.
	Source string
}

// Document is a decoded HTML export ready for parsing.
type Document struct {
	Source string
	HTML   string
	Hash   string
}

// RowExtractor walks the tables of an HTML export and yields data rows.
type RowExtractor interface {
	// ExtractRows parses html and returns the data rows in document order.
	// Returns EINVALID if the markup cannot be parsed at all.
	ExtractRows(html, source string) (iter.Seq[Row], error)
}

// Parser turns one HTML export into course records.
type Parser interface {
	Parse(html, source string) ([]*Course, error)
}

// DocumentSource loads HTML exports from the given locations.
type DocumentSource interface {
	Documents(ctx context.Context, paths []string) ([]*Document, error)
}

// CourseWriter serializes course records.
type CourseWriter interface {
	WriteCourses(w io.Writer, courses []*Course) error
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Deref returns the value of p, or the empty string when p is nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	return String(*p)
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return Float(*p)
}
