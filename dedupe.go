package coursetab

// DedupeBySeq keeps the first record for every non-nil Seq and passes
// records without a Seq through untouched. Relative order is preserved and
// the input is not modified.
func DedupeBySeq(courses []*Course) []*Course {
	seen := make(map[string]struct{}, len(courses))
	out := make([]*Course, 0, len(courses))
	for _, c := range courses {
		if c == nil {
			continue
		}
		if c.Seq != nil {
			if _, ok := seen[*c.Seq]; ok {
				continue
			}
			seen[*c.Seq] = struct{}{}
		}
		out = append(out, c)
	}
	return out
}
