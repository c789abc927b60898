// Package json writes course records as a JSON array.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/coursetab"
)

// Ensure Writer implements coursetab.CourseWriter at compile time.
var _ coursetab.CourseWriter = (*Writer)(nil)

// Writer encodes courses as a JSON array of records.
type Writer struct {
	// Indent is used per nesting level; empty writes compact JSON.
	Indent string

	// Schedule adds parsed day, startTime, endTime and place arrays to
	// every record.
	Schedule bool
}

// NewWriter returns a Writer producing indented JSON.
func NewWriter() *Writer {
	return &Writer{Indent: "  "}
}

// scheduledCourse is a record with its meeting slots split into
// parallel arrays.
type scheduledCourse struct {
	*coursetab.Course
	Place     []string `json:"place"`
	Day       []int    `json:"day"`
	StartTime []int    `json:"startTime"`
	EndTime   []int    `json:"endTime"`
}

// WriteCourses encodes courses to out. Times always encode as an array.
func (w *Writer) WriteCourses(out io.Writer, courses []*coursetab.Course) error {
	records := make([]any, 0, len(courses))
	for _, c := range courses {
		if c.Times == nil {
			cp := *c
			cp.Times = []string{}
			c = &cp
		}
		if !w.Schedule {
			records = append(records, c)
			continue
		}

		sc := scheduledCourse{
			Course:    c,
			Place:     []string{},
			Day:       []int{},
			StartTime: []int{},
			EndTime:   []int{},
		}
		for _, slot := range c.Slots() {
			sc.Place = append(sc.Place, slot.Place)
			sc.Day = append(sc.Day, slot.Day)
			sc.StartTime = append(sc.StartTime, slot.Start)
			sc.EndTime = append(sc.EndTime, slot.End)
		}
		records = append(records, sc)
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.Indent)
	return enc.Encode(records)
}
