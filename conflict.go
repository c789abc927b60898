package coursetab

// Overlaps reports whether s and o meet on the same day with intersecting
// periods. Periods are inclusive, so slots that share an end period overlap.
func (s Slot) Overlaps(o Slot) bool {
	if s.Day != o.Day {
		return false
	}
	return s.Start <= o.End && o.Start <= s.End
}

// Conflicts reports whether target meets at the same time as any of the
// selected courses. A target already among selected (same seq) never
// conflicts, and neither does a course without parsable times.
func Conflicts(target *Course, selected []*Course) bool {
	if target == nil {
		return false
	}
	if target.Seq != nil {
		for _, s := range selected {
			if s != nil && s.Seq != nil && *s.Seq == *target.Seq {
				return false
			}
		}
	}

	slots := target.Slots()
	if len(slots) == 0 {
		return false
	}
	for _, s := range selected {
		if s == nil {
			continue
		}
		for _, other := range s.Slots() {
			for _, slot := range slots {
				if slot.Overlaps(other) {
					return true
				}
			}
		}
	}
	return false
}

// SelectBySeq returns the courses whose seq is in seqs, in course order.
func SelectBySeq(courses []*Course, seqs []string) []*Course {
	want := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		want[s] = true
	}
	var out []*Course
	for _, c := range courses {
		if c != nil && c.Seq != nil && want[*c.Seq] {
			out = append(out, c)
		}
	}
	return out
}
