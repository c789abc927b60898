package pipeline

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/coursetab"
	"golang.org/x/sync/errgroup"
)

// Runner parses batches of documents. Each document runs through its own
// independent pipeline; documents are processed concurrently and results
// are concatenated in input order.
type Runner struct {
	Parser      coursetab.Parser
	Concurrency int

	// GlobalDedupe applies one more DedupeBySeq pass across all documents.
	GlobalDedupe bool
}

// Result holds the outcome of a batch run.
type Result struct {
	Courses []*coursetab.Course
	Parsed  int
	Failed  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Count     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// docResult holds the outcome of parsing a single document.
type docResult struct {
	position int
	source   string
	courses  []*coursetab.Course
	err      error
}

// Run parses docs. A document that fails to parse is reported through
// progress and counted in Result.Failed; the rest of the batch continues.
// Run returns an error only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, docs []*coursetab.Document, progress ProgressFunc) (*Result, error) {
	total := len(docs)
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan docResult, concurrency)
	var completed atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, doc := range docs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- docResult{position: i, source: doc.Source, err: err}
					return nil
				}
				courses, err := r.Parser.Parse(doc.HTML, doc.Source)
				resultCh <- docResult{position: i, source: doc.Source, courses: courses, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]docResult, total)
	for res := range resultCh {
		completed.Add(1)
		results[res.position] = res

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Source:    res.source,
			Count:     len(res.courses),
		}
		if res.err != nil {
			event.Type = ProgressFailed
			event.Error = res.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Courses: []*coursetab.Course{}}
	for _, res := range results {
		if res.err != nil {
			result.Failed++
			continue
		}
		result.Parsed++
		result.Courses = append(result.Courses, res.courses...)
	}

	if r.GlobalDedupe {
		result.Courses = coursetab.DedupeBySeq(result.Courses)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total, Count: len(result.Courses)})
	}

	return result, nil
}
