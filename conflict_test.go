package coursetab_test

import (
	"testing"

	"github.com/fwojciec/coursetab"
	"github.com/stretchr/testify/assert"
)

func TestSlot_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b coursetab.Slot
		want bool
	}{
		{"same periods", coursetab.Slot{Day: 1, Start: 1, End: 2}, coursetab.Slot{Day: 1, Start: 1, End: 2}, true},
		{"partial overlap", coursetab.Slot{Day: 1, Start: 1, End: 3}, coursetab.Slot{Day: 1, Start: 3, End: 5}, true},
		{"touching ends overlap", coursetab.Slot{Day: 2, Start: 6, End: 7}, coursetab.Slot{Day: 2, Start: 7, End: 8}, true},
		{"contained", coursetab.Slot{Day: 3, Start: 1, End: 8}, coursetab.Slot{Day: 3, Start: 4, End: 4}, true},
		{"disjoint periods", coursetab.Slot{Day: 1, Start: 1, End: 2}, coursetab.Slot{Day: 1, Start: 3, End: 4}, false},
		{"different days", coursetab.Slot{Day: 1, Start: 1, End: 2}, coursetab.Slot{Day: 2, Start: 1, End: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func scheduled(seq string, times ...string) *coursetab.Course {
	return &coursetab.Course{Source: "a", Seq: coursetab.String(seq), Times: times}
}

func TestConflicts(t *testing.T) {
	t.Parallel()

	selected := []*coursetab.Course{
		scheduled("0001", "一 / 1,2 / A101"),
		scheduled("0002", "三 / 6-8 / B206"),
	}

	tests := []struct {
		name   string
		target *coursetab.Course
		want   bool
	}{
		{"overlapping slot", scheduled("0100", "三 / 8,9 / C1"), true},
		{"second slot overlaps", scheduled("0101", "二 / 1 / C1", "一 / 2 / C2"), true},
		{"free slot", scheduled("0102", "一 / 3,4 / C1"), false},
		{"already selected", scheduled("0001", "一 / 1,2 / A101"), false},
		{"no parsable times", scheduled("0103", "TBA"), false},
		{"no times", scheduled("0104"), false},
		{"nil target", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, coursetab.Conflicts(tt.target, selected))
		})
	}

	t.Run("nothing selected", func(t *testing.T) {
		t.Parallel()

		assert.False(t, coursetab.Conflicts(scheduled("0100", "一 / 1 / C1"), nil))
	})
}

func TestSelectBySeq(t *testing.T) {
	t.Parallel()

	courses := []*coursetab.Course{scheduled("0001"), {Source: "a"}, scheduled("0002"), scheduled("0003")}

	got := coursetab.SelectBySeq(courses, []string{"0003", "0001", "9999"})

	assert.Equal(t, []*coursetab.Course{courses[0], courses[3]}, got)
}
