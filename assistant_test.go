package coursetab_test

import (
	"testing"

	"github.com/fwojciec/coursetab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAssistants(t *testing.T) {
	t.Parallel()

	t.Run("folds assistant row into its course", func(t *testing.T) {
		t.Parallel()

		base := &coursetab.Course{
			Source: "a.htm", DeptBlock: "CS", Code: coursetab.String("CS101"), Class: coursetab.String("A"),
			Seq: coursetab.String("01"), Teacher: coursetab.String("Prof"), Cap: coursetab.Float(30),
			Times: []string{"Mon 1"},
		}
		ta := &coursetab.Course{
			Source: "a.htm", DeptBlock: "CS", Code: coursetab.String("CS101"), Class: coursetab.String("A"),
			Teacher: coursetab.String("王小明"), Cap: coursetab.Float(25), Times: []string{"Fri 7"},
			Assistant: true,
		}
		other := &coursetab.Course{
			Source: "a.htm", DeptBlock: "CS", Code: coursetab.String("CS102"), Seq: coursetab.String("02"),
		}

		got := coursetab.MergeAssistants([]*coursetab.Course{base, ta, other})

		require.Len(t, got, 2)
		assert.Equal(t, []string{"Mon 1", "Fri 7"}, got[0].Times)
		assert.Equal(t, coursetab.String("Prof,王小明"), got[0].Teacher)
		assert.Equal(t, coursetab.Float(25), got[0].Cap)
		assert.Equal(t, coursetab.String("01"), got[0].Seq)
		assert.Equal(t, "a.htm;a.htm", got[0].Source)
		assert.Same(t, other, got[1])

		// inputs untouched
		assert.Equal(t, []string{"Mon 1"}, base.Times)
	})

	t.Run("merges assistant appearing before its base", func(t *testing.T) {
		t.Parallel()

		ta := &coursetab.Course{Source: "a", Code: coursetab.String("X"), Teacher: coursetab.String("TA"), Times: []string{"Tue 2"}}
		base := &coursetab.Course{Source: "a", Code: coursetab.String("X"), Teacher: coursetab.String("Lee"), Times: []string{"Mon 1"}}

		got := coursetab.MergeAssistants([]*coursetab.Course{ta, base})

		require.Len(t, got, 1)
		assert.Equal(t, []string{"Mon 1", "Tue 2"}, got[0].Times)
		assert.Equal(t, coursetab.String("Lee,TA"), got[0].Teacher)
	})

	t.Run("merges several assistants in order", func(t *testing.T) {
		t.Parallel()

		base := &coursetab.Course{Source: "a", Code: coursetab.String("X"), Teacher: coursetab.String("Lee")}
		ta1 := &coursetab.Course{Source: "a", Code: coursetab.String("X"), Teacher: coursetab.String("Bob"), Assistant: true}
		ta2 := &coursetab.Course{Source: "a", Code: coursetab.String("X"), Teacher: coursetab.String("Bob"), Assistant: true}

		got := coursetab.MergeAssistants([]*coursetab.Course{base, ta1, ta2})

		require.Len(t, got, 1)
		assert.Equal(t, coursetab.String("Lee,Bob,Bob"), got[0].Teacher)
	})

	t.Run("keeps orphan assistants and records without code", func(t *testing.T) {
		t.Parallel()

		orphan := &coursetab.Course{Source: "a", Code: coursetab.String("Y"), Assistant: true}
		noCode := &coursetab.Course{Source: "a", Teacher: coursetab.String("TA")}

		got := coursetab.MergeAssistants([]*coursetab.Course{orphan, noCode})

		assert.Equal(t, []*coursetab.Course{orphan, noCode}, got)
	})

	t.Run("does not merge across classes or departments", func(t *testing.T) {
		t.Parallel()

		base := &coursetab.Course{Source: "a", DeptBlock: "CS", Code: coursetab.String("X"), Class: coursetab.String("A")}
		otherClass := &coursetab.Course{Source: "a", DeptBlock: "CS", Code: coursetab.String("X"), Class: coursetab.String("B"), Assistant: true}
		otherDept := &coursetab.Course{Source: "a", DeptBlock: "EE", Code: coursetab.String("X"), Class: coursetab.String("A"), Assistant: true}

		got := coursetab.MergeAssistants([]*coursetab.Course{base, otherClass, otherDept})

		assert.Len(t, got, 3)
	})
}
