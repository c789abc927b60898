package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fwojciec/coursetab"
	"github.com/fwojciec/coursetab/csv"
	"github.com/fwojciec/coursetab/etree"
	"github.com/fwojciec/coursetab/fs"
	"github.com/fwojciec/coursetab/goquery"
	"github.com/fwojciec/coursetab/htmltomarkdown"
	"github.com/fwojciec/coursetab/json"
	"github.com/fwojciec/coursetab/pipeline"
	cslog "github.com/fwojciec/coursetab/slog"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	writer, err := newWriter(c.Format, c.Schedule)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursetab.ErrorMessage(err))
		return err
	}

	courses, err := c.load(deps, c.Paths)
	if err != nil {
		return err
	}
	filter := c.Filter()
	if len(c.ConflictsWith) > 0 {
		filter.Selected = coursetab.SelectBySeq(courses, c.ConflictsWith)
		if missing := missingSeqs(filter.Selected, c.ConflictsWith); len(missing) > 0 {
			err := coursetab.Errorf(coursetab.ENOTFOUND, "selected course %s not found", strings.Join(missing, ", "))
			fmt.Fprintf(deps.Stderr, "error: %s\n", coursetab.ErrorMessage(err))
			return err
		}
	}
	courses = coursetab.FilterCourses(courses, filter)
	writer = cslog.NewLoggingCourseWriter(writer, c.Format, deps.Logger)

	write := func(w io.Writer) error {
		return writer.WriteCourses(w, courses)
	}
	if c.Output == "" {
		return write(deps.Stdout)
	}
	if err := fs.WriteFile(c.Output, write); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursetab.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Wrote %d courses to %s\n", len(courses), c.Output)
	return nil
}

// load reads the documents under paths and runs them through the pipeline.
func (f *PipelineFlags) load(deps *Dependencies, paths []string) ([]*coursetab.Course, error) {
	fallback, err := coursetab.ParseNumberFallback(f.NumericFallback)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursetab.ErrorMessage(err))
		return nil, err
	}

	docs, err := deps.Source.Documents(deps.Ctx, paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursetab.ErrorMessage(err))
		return nil, err
	}

	builder := coursetab.NewBuilder()
	builder.Fallback = fallback
	parser := pipeline.NewParser(goquery.NewTableExtractor(), builder)
	parser.MergeAssistants = f.MergeTA

	runner := &pipeline.Runner{
		Parser:       cslog.NewLoggingParser(parser, deps.Logger),
		Concurrency:  f.Concurrency,
		GlobalDedupe: f.GlobalDedupe,
	}

	progress := func(event pipeline.ProgressEvent) {
		if event.Type == pipeline.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Source, coursetab.ErrorMessage(event.Error))
		}
	}

	result, err := runner.Run(deps.Ctx, docs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}
	if result.Parsed == 0 && result.Failed > 0 {
		err := coursetab.Errorf(coursetab.EINVALID, "no documents could be parsed")
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursetab.ErrorMessage(err))
		return nil, err
	}
	return result.Courses, nil
}

// missingSeqs returns the seqs with no course in selected.
func missingSeqs(selected []*coursetab.Course, seqs []string) []string {
	var missing []string
	for _, seq := range seqs {
		if !slices.ContainsFunc(selected, func(c *coursetab.Course) bool { return coursetab.Deref(c.Seq) == seq }) {
			missing = append(missing, seq)
		}
	}
	return missing
}

// newWriter returns the CourseWriter registered for format.
func newWriter(format string, schedule bool) (coursetab.CourseWriter, error) {
	switch format {
	case "", "json":
		w := json.NewWriter()
		w.Schedule = schedule
		return w, nil
	case "csv":
		return csv.NewWriter(), nil
	case "xml":
		return etree.NewWriter(), nil
	case "md":
		return htmltomarkdown.NewWriter(), nil
	}
	return nil, coursetab.Errorf(coursetab.EINVALID, "unknown output format %q", format)
}
