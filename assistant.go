package coursetab

// identity groups records that describe the same course offering.
type identity struct {
	dept  string
	code  string
	class string
}

func identityOf(c *Course) (identity, bool) {
	if c.Code == nil {
		return identity{}, false
	}
	return identity{dept: c.DeptBlock, code: *c.Code, class: Deref(c.Class)}, true
}

// MergeAssistants folds teaching-assistant records into the primary record
// of the same course (same department block, code and class). The first
// non-assistant record of a course is its base; assistant records are merged
// into it in input order and dropped. Assistant records without a base and
// records without a code are returned unchanged. The input is not modified.
func MergeAssistants(courses []*Course) []*Course {
	bases := make(map[identity]int)
	for i, c := range courses {
		if c == nil || c.IsAssistant() {
			continue
		}
		if id, ok := identityOf(c); ok {
			if _, exists := bases[id]; !exists {
				bases[id] = i
			}
		}
	}

	merged := make(map[int]*Course)
	absorbed := make(map[int]bool)
	for i, c := range courses {
		if c == nil || !c.IsAssistant() {
			continue
		}
		id, ok := identityOf(c)
		if !ok {
			continue
		}
		bi, ok := bases[id]
		if !ok {
			continue
		}
		base, ok := merged[bi]
		if !ok {
			base = courses[bi]
		}
		merged[bi] = Merge(base, c)
		absorbed[i] = true
	}

	out := make([]*Course, 0, len(courses)-len(absorbed))
	for i, c := range courses {
		if c == nil || absorbed[i] {
			continue
		}
		if m, ok := merged[i]; ok {
			out = append(out, m)
			continue
		}
		out = append(out, c)
	}
	return out
}
