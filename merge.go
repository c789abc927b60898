package coursetab

import "slices"

// Merge returns a new record combining base with other, typically a
// teaching-assistant session of the same course. Neither input is modified.
//
// Merge policy:
//   - Times: union in first-seen order, base entries first.
//   - Teacher: appended as base + "," + other. Repeated names are kept, so
//     "Alice" merged with "Bob,Bob" is "Alice,Bob,Bob", not a distinct-name set.
//   - Cap: the incoming value wins when present.
//   - Seq: the incoming value wins when present.
//   - Source: joined with ";" to keep provenance.
//
// All other fields come from base. A nil other yields a copy of base, a nil
// base yields a record built from other alone, and two nils yield nil.
func Merge(base, other *Course) *Course {
	if base == nil && other == nil {
		return nil
	}
	out := base.Clone()
	if out == nil {
		out = &Course{Times: []string{}}
	}
	if other == nil {
		return out
	}

	for _, t := range other.Times {
		if !slices.Contains(out.Times, t) {
			out.Times = append(out.Times, t)
		}
	}

	out.Teacher = joinNonEmpty(out.Teacher, other.Teacher, ",")

	if other.Cap != nil && (out.Cap == nil || *out.Cap != *other.Cap) {
		out.Cap = Float(*other.Cap)
	}

	if other.Seq != nil {
		out.Seq = String(*other.Seq)
	}

	if s := joinNonEmpty(&out.Source, &other.Source, ";"); s != nil {
		out.Source = *s
	}

	return out
}

func joinNonEmpty(a, b *string, sep string) *string {
	switch {
	case Deref(a) == "" && Deref(b) == "":
		return a
	case Deref(a) == "":
		return String(*b)
	case Deref(b) == "":
		return a
	default:
		return String(*a + sep + *b)
	}
}
