package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/coursetab"
)

// Dependencies holds the services commands need.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Source coursetab.DocumentSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool   `short:"v" help:"Log pipeline activity to stderr"`
	Encoding string `short:"e" env:"COURSETAB_ENCODING" help:"Force input encoding (e.g. big5); sniffed when empty"`

	Parse       ParseCmd       `cmd:"" help:"Extract course records from HTML exports"`
	Departments DepartmentsCmd `cmd:"" help:"List departments found in HTML exports"`
}

// PipelineFlags configure record building and reconciliation.
type PipelineFlags struct {
	NumericFallback string `enum:"null,zero" default:"null" env:"COURSETAB_NUMERIC_FALLBACK" help:"Value for unparsable credits/cap cells (null or zero)"`
	MergeTA         bool   `name:"merge-ta" default:"true" negatable:"" help:"Fold teaching-assistant rows into their course"`
	GlobalDedupe    bool   `default:"true" negatable:"" help:"Deduplicate by sequence number across all inputs"`
	Concurrency     int    `short:"c" default:"4" env:"COURSETAB_CONCURRENCY" help:"Files parsed concurrently"`
}

// FilterFlags select a subset of the extracted courses.
type FilterFlags struct {
	Search      string `short:"s" help:"Match code, title, teacher, seq or place"`
	Department  string `short:"d" help:"Match department block label"`
	Grade       string `help:"Match grade exactly"`
	Required    string `help:"Match required/elective label exactly"`
	Weekday     int    `help:"Meeting day 1-7 (0 for any)"`
	StartPeriod int    `help:"Earliest period of a meeting slot"`
	EndPeriod   int    `help:"Latest period of a meeting slot (0 disables the window)"`

	ConflictsWith []string `placeholder:"SEQ,..." help:"Drop courses whose times conflict with these selected courses"`
}

// Filter returns the course filter described by the flags.
func (f FilterFlags) Filter() coursetab.CourseFilter {
	return coursetab.CourseFilter{
		Search:      f.Search,
		Department:  f.Department,
		Grade:       f.Grade,
		Required:    f.Required,
		Weekday:     f.Weekday,
		StartPeriod: f.StartPeriod,
		EndPeriod:   f.EndPeriod,
	}
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Paths    []string `arg:"" help:"HTML export files or directories"`
	Format   string   `short:"f" enum:"json,csv,xml,md" default:"json" env:"COURSETAB_FORMAT" help:"Output format (json, csv, xml, md)"`
	Output   string   `short:"o" help:"Output file (default: stdout)"`
	Schedule bool     `help:"Add parsed day/startTime/endTime/place arrays (json only)"`

	PipelineFlags `embed:""`
	FilterFlags   `embed:""`
}

// DepartmentsCmd is the "departments" subcommand.
type DepartmentsCmd struct {
	Paths []string `arg:"" help:"HTML export files or directories"`

	PipelineFlags `embed:""`
}
