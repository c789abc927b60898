package coursetab

import (
	"strconv"
	"strings"
)

// Header lists the serialized record keys in output column order.
var Header = []string{
	"source", "dept_block",
	string(FieldGrade), string(FieldSeq), string(FieldCode), string(FieldMajor),
	string(FieldTermOrder), string(FieldClass), string(FieldGroupDiv), string(FieldRequired),
	string(FieldCredits), string(FieldGroup), string(FieldTitle), string(FieldCap),
	string(FieldTeacher), string(FieldTimes),
}

// Cells renders the course as one text cell per Header column.
// Nil values render empty; times are joined with sep.
func (c *Course) Cells(sep string) []string {
	return []string{
		c.Source,
		c.DeptBlock,
		Deref(c.Grade),
		Deref(c.Seq),
		Deref(c.Code),
		Deref(c.Major),
		Deref(c.TermOrder),
		Deref(c.Class),
		Deref(c.GroupDiv),
		Deref(c.Required),
		FormatNumber(c.Credits),
		Deref(c.Group),
		Deref(c.Title),
		FormatNumber(c.Cap),
		Deref(c.Teacher),
		strings.Join(c.Times, sep),
	}
}

// FormatNumber renders a numeric field without a trailing ".0";
// nil renders as the empty string.
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
