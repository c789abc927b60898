package pipeline_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/fwojciec/coursetab"
	"github.com/fwojciec/coursetab/goquery"
	"github.com/fwojciec/coursetab/mock"
	"github.com/fwojciec/coursetab/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportHTML = `
<table>
  <tr><td>系別(Department)：CS</td></tr>
  <tr>
    <td>1</td><td>01</td><td>CS101</td><td>CS</td><td>1</td><td>A</td><td></td>
    <td>必修</td><td>3</td><td>Group</td><td>Intro to CS</td><td>30</td>
    <td>Prof (PHD)</td><td>Mon 1</td><td>Wed 2</td>
  </tr>
  <tr>
    <td>1</td><td></td><td>CS101</td><td>CS</td><td>1</td><td>A</td><td></td>
    <td>必修</td><td>0</td><td>Group</td><td>Intro to CS</td><td>35</td>
    <td>王小明(助教)</td><td>Fri 7</td><td></td>
  </tr>
  <tr>
    <td>1</td><td>01</td><td>CS101</td><td>CS</td><td>1</td><td>A</td><td></td>
    <td>必修</td><td>3</td><td>Group</td><td>Intro to CS</td><td>30</td>
    <td>Prof</td><td>Mon 1</td><td></td>
  </tr>
  <tr>
    <td>2</td><td>02</td><td>CS201</td><td>CS</td><td>1</td><td>A</td><td></td>
    <td>選修</td><td>N/A</td><td>Group</td><td>Data Structures</td><td>50</td>
    <td>Lee</td><td></td><td></td>
  </tr>
</table>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses, merges assistants and dedupes", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewParser(goquery.NewTableExtractor(), coursetab.NewBuilder())

		courses, err := p.Parse(exportHTML, "sample.htm")

		require.NoError(t, err)
		require.Len(t, courses, 2)

		first := courses[0]
		assert.Equal(t, "sample.htm;sample.htm", first.Source)
		assert.Equal(t, "CS", first.DeptBlock)
		assert.Equal(t, coursetab.String("01"), first.Seq)
		assert.Equal(t, coursetab.String("Prof,王小明"), first.Teacher)
		assert.Equal(t, []string{"Mon 1", "Wed 2", "Fri 7"}, first.Times)
		assert.Equal(t, coursetab.Float(35), first.Cap)
		assert.Equal(t, coursetab.Float(3), first.Credits)

		second := courses[1]
		assert.Equal(t, coursetab.String("02"), second.Seq)
		assert.Nil(t, second.Credits)
		assert.Equal(t, []string{}, second.Times)
	})

	t.Run("keeps assistant rows when merging is disabled", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewParser(goquery.NewTableExtractor(), coursetab.NewBuilder())
		p.MergeAssistants = false

		courses, err := p.Parse(exportHTML, "sample.htm")

		require.NoError(t, err)
		require.Len(t, courses, 3)
		assert.Nil(t, courses[1].Seq)
		assert.True(t, courses[1].Assistant)
	})

	t.Run("returns extractor error", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.RowExtractor{
			ExtractRowsFn: func(html, source string) (iter.Seq[coursetab.Row], error) {
				return nil, coursetab.Errorf(coursetab.EINVALID, "bad markup")
			},
		}
		p := pipeline.NewParser(extractor, nil)

		_, err := p.Parse("<", "x.htm")

		assert.Equal(t, coursetab.EINVALID, coursetab.ErrorCode(err))
	})

	t.Run("requires source", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewParser(goquery.NewTableExtractor(), nil)

		_, err := p.Parse(exportHTML, "")

		assert.Equal(t, coursetab.EINVALID, coursetab.ErrorCode(err))
	})

	t.Run("uses default builder when none is set", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.RowExtractor{
			ExtractRowsFn: func(html, source string) (iter.Seq[coursetab.Row], error) {
				return slices.Values([]coursetab.Row{
					{Cells: []string{"1", "07"}, DeptBlock: "X", Source: source},
				}), nil
			},
		}
		p := pipeline.NewParser(extractor, nil)

		courses, err := p.Parse("", "x.htm")

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, coursetab.String("07"), courses[0].Seq)
	})

	t.Run("returns empty slice for document without data rows", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewParser(goquery.NewTableExtractor(), nil)

		courses, err := p.Parse("<p>empty</p>", "x.htm")

		require.NoError(t, err)
		assert.NotNil(t, courses)
		assert.Empty(t, courses)
	})
}
