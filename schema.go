package coursetab

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Field names a Course field. Values match the serialized record keys.
type Field string

// Field constants.
const (
	FieldGrade     Field = "grade"
	FieldSeq       Field = "seq"
	FieldCode      Field = "code"
	FieldMajor     Field = "major"
	FieldTermOrder Field = "term_order"
	FieldClass     Field = "class"
	FieldGroupDiv  Field = "group_div"
	FieldRequired  Field = "required"
	FieldCredits   Field = "credits"
	FieldGroup     Field = "group"
	FieldTitle     Field = "title"
	FieldCap       Field = "cap"
	FieldTeacher   Field = "teacher"
	FieldTimes     Field = "times"
)

// Kind selects the coercion applied to a cell.
type Kind int

const (
	// KindText trims the cell; empty becomes nil.
	KindText Kind = iota
	// KindNumber parses the cell as an integer or decimal.
	KindNumber
	// KindTeacher strips parenthetical annotations from a name.
	KindTeacher
	// KindTime appends a non-empty cell to the meeting times.
	KindTime
)

// Column maps one positional cell to a Course field.
type Column struct {
	Index int
	Field Field
	Kind  Kind
}

// Schema is the ordered column layout of a data row.
type Schema []Column

// DefaultSchema is the 15-column layout of the registration system export.
var DefaultSchema = Schema{
	{Index: 0, Field: FieldGrade, Kind: KindText},
	{Index: 1, Field: FieldSeq, Kind: KindText},
	{Index: 2, Field: FieldCode, Kind: KindText},
	{Index: 3, Field: FieldMajor, Kind: KindText},
	{Index: 4, Field: FieldTermOrder, Kind: KindText},
	{Index: 5, Field: FieldClass, Kind: KindText},
	{Index: 6, Field: FieldGroupDiv, Kind: KindText},
	{Index: 7, Field: FieldRequired, Kind: KindText},
	{Index: 8, Field: FieldCredits, Kind: KindNumber},
	{Index: 9, Field: FieldGroup, Kind: KindText},
	{Index: 10, Field: FieldTitle, Kind: KindText},
	{Index: 11, Field: FieldCap, Kind: KindNumber},
	{Index: 12, Field: FieldTeacher, Kind: KindTeacher},
	{Index: 13, Field: FieldTimes, Kind: KindTime},
	{Index: 14, Field: FieldTimes, Kind: KindTime},
}

// Width returns the number of cells a data row must have.
func (s Schema) Width() int {
	var n int
	for _, col := range s {
		n = max(n, col.Index+1)
	}
	return n
}

// NumberFallback decides what an unparsable numeric cell becomes.
type NumberFallback int

const (
	// FallbackNull leaves the field nil.
	FallbackNull NumberFallback = iota
	// FallbackZero stores 0.
	FallbackZero
)

// ParseNumberFallback converts a configuration value ("null" or "zero").
func ParseNumberFallback(s string) (NumberFallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null":
		return FallbackNull, nil
	case "zero":
		return FallbackZero, nil
	default:
		return FallbackNull, Errorf(EINVALID, "unknown numeric fallback %q (want null or zero)", s)
	}
}

// Builder maps raw rows to Course records.
type Builder struct {
	Schema   Schema
	Fallback NumberFallback
}

// NewBuilder returns a Builder using DefaultSchema and FallbackNull.
func NewBuilder() *Builder {
	return &Builder{Schema: DefaultSchema}
}

// Build converts one row. Cells beyond the row length are treated as empty.
func (b *Builder) Build(row Row) *Course {
	c := &Course{
		Source:    row.Source,
		DeptBlock: row.DeptBlock,
		Times:     []string{},
	}
	for _, col := range b.Schema {
		var cell string
		if col.Index < len(row.Cells) {
			cell = strings.TrimSpace(row.Cells[col.Index])
		}

		switch col.Kind {
		case KindText:
			c.setText(col.Field, nullIfEmpty(cell))
		case KindNumber:
			c.setNumber(col.Field, b.number(cell))
		case KindTeacher:
			if IsTA(cell) {
				c.Assistant = true
			}
			c.setText(col.Field, nullIfEmpty(StripAnnotations(cell)))
		case KindTime:
			if cell != "" {
				c.Times = append(c.Times, cell)
			}
		}
	}
	return c
}

func (b *Builder) number(cell string) *float64 {
	if v, ok := ParseNumber(cell); ok {
		return &v
	}
	if b.Fallback == FallbackZero {
		return Float(0)
	}
	return nil
}

func (c *Course) setText(f Field, v *string) {
	switch f {
	case FieldGrade:
		c.Grade = v
	case FieldSeq:
		c.Seq = v
	case FieldCode:
		c.Code = v
	case FieldMajor:
		c.Major = v
	case FieldTermOrder:
		c.TermOrder = v
	case FieldClass:
		c.Class = v
	case FieldGroupDiv:
		c.GroupDiv = v
	case FieldRequired:
		c.Required = v
	case FieldGroup:
		c.Group = v
	case FieldTitle:
		c.Title = v
	case FieldTeacher:
		c.Teacher = v
	}
}

func (c *Course) setNumber(f Field, v *float64) {
	switch f {
	case FieldCredits:
		c.Credits = v
	case FieldCap:
		c.Cap = v
	}
}

var decimalRe = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)

// ParseNumber parses an integer or decimal cell. Full-width digits are
// accepted. Anything else, including "N/A", reports false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(width.Fold.String(s))
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i), true
	}
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var annotationRe = regexp.MustCompile(`[(（][^()（）]*[)）]`)

// StripAnnotations removes parenthetical qualifiers such as "(PHD)" from
// a name and trims the result.
func StripAnnotations(s string) string {
	for annotationRe.MatchString(s) {
		s = annotationRe.ReplaceAllString(s, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
