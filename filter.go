package coursetab

import (
	"slices"
	"strings"
)

// CourseFilter selects courses. Zero values match everything.
type CourseFilter struct {
	// Search matches a substring of code, title, teacher, seq or place.
	Search string

	// Department matches a substring of the department block label.
	Department string

	Grade    string
	Required string

	// Weekday restricts to courses meeting on that day (1-7); 0 means any.
	Weekday int

	// StartPeriod and EndPeriod restrict to courses with a slot fully
	// inside the window. Ignored unless 0 < EndPeriod and StartPeriod <= EndPeriod.
	StartPeriod int
	EndPeriod   int

	// Selected drops courses whose times conflict with these courses.
	Selected []*Course
}

// Match reports whether c passes the filter.
func (f CourseFilter) Match(c *Course) bool {
	slots := c.Slots()

	if search := strings.TrimSpace(f.Search); search != "" && !matchesSearch(c, slots, search) {
		return false
	}
	if f.Department != "" && !strings.Contains(c.DeptBlock, f.Department) {
		return false
	}
	if f.Grade != "" && Deref(c.Grade) != f.Grade {
		return false
	}
	if f.Required != "" && Deref(c.Required) != f.Required {
		return false
	}
	if f.Weekday != 0 && !slices.ContainsFunc(slots, func(s Slot) bool { return s.Day == f.Weekday }) {
		return false
	}
	if len(f.Selected) > 0 && Conflicts(c, f.Selected) {
		return false
	}
	if f.EndPeriod != 0 && f.StartPeriod <= f.EndPeriod {
		return slices.ContainsFunc(slots, func(s Slot) bool {
			return s.Start >= f.StartPeriod && s.End <= f.EndPeriod
		})
	}
	return true
}

// FilterCourses returns the courses matching f, in order.
func FilterCourses(courses []*Course, f CourseFilter) []*Course {
	out := make([]*Course, 0, len(courses))
	for _, c := range courses {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

func matchesSearch(c *Course, slots []Slot, search string) bool {
	for _, v := range []*string{c.Code, c.Title, c.Teacher, c.Seq} {
		if strings.Contains(Deref(v), search) {
			return true
		}
	}
	return slices.ContainsFunc(slots, func(s Slot) bool {
		return strings.Contains(s.Place, search)
	})
}

// DepartmentOptions lists the distinct department names found in the
// courses' block labels, in first-seen order. A label such as
// "1. 資工系 大學部" or "1.資工系.大學部" yields "資工系".
func DepartmentOptions(courses []*Course) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range courses {
		label := strings.Join(strings.Fields(c.DeptBlock), " ")
		if _, after, ok := strings.Cut(label, "."); ok {
			label, _, _ = strings.Cut(after, ".")
		}
		fields := strings.Fields(label)
		if len(fields) == 0 {
			continue
		}
		if dept := fields[0]; !seen[dept] {
			seen[dept] = true
			out = append(out, dept)
		}
	}
	return out
}
