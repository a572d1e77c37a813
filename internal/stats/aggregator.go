package stats

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// FileLister lists the files of a directory whose names end in suffix.
type FileLister interface {
	ListFiles(dir, suffix string) ([]string, error)
}

// AlignmentParser reads one alignment file into an ordered record set.
type AlignmentParser interface {
	ParseAlignment(path string) (*sequence.RecordSet, error)
}

// FailurePolicy decides what the aggregator does when one file fails.
type FailurePolicy string

const (
	// FailFast aborts the run on the first failing file.
	FailFast FailurePolicy = "fail-fast"
	// Collect skips failing files and reports them with the result.
	Collect FailurePolicy = "collect"
)

// ParseFailurePolicy validates a policy name. An empty name means FailFast.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", FailFast:
		return FailFast, nil
	case Collect:
		return Collect, nil
	default:
		return "", &sequence.InvalidInputError{
			Param:  "failure policy",
			Reason: fmt.Sprintf("unknown policy %q (want %q or %q)", s, FailFast, Collect),
		}
	}
}

// FileError ties a per-file failure to the file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Report is the result of aggregating a directory.
type Report struct {
	Dir      string
	Suffix   string
	Files    []string
	Table    *Table
	Failures []*FileError
}

// Aggregator runs a Collector over every matching file in a directory.
type Aggregator struct {
	Lister    FileLister
	Parser    AlignmentParser
	Collector *Collector
	Policy    FailurePolicy
	Logger    *slog.Logger
}

func (a *Aggregator) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// Aggregate lists dir, computes the rows of each matching file and
// concatenates them in file order, then pair order.
//
// Zero matching files fails with NoMatchingFilesError. Under FailFast
// the first per-file error aborts the run, wrapped in a FileError.
// Under Collect failing files are logged, skipped and listed in
// Report.Failures.
func (a *Aggregator) Aggregate(dir, suffix string) (*Report, error) {
	paths, err := a.Lister.ListFiles(dir, suffix)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, &sequence.NoMatchingFilesError{Dir: dir, Suffix: suffix}
	}

	policy := a.Policy
	if policy == "" {
		policy = FailFast
	}

	report := &Report{
		Dir:      dir,
		Suffix:   suffix,
		Files:    paths,
		Table:    NewTable(),
		Failures: make([]*FileError, 0),
	}
	log := a.logger()

	for _, path := range paths {
		rows, err := a.collectFile(path)
		if err != nil {
			ferr := &FileError{Path: path, Err: err}
			if policy == FailFast {
				return nil, ferr
			}
			log.Warn("skipping alignment", "file", path, "error", err)
			report.Failures = append(report.Failures, ferr)
			continue
		}
		log.Debug("alignment processed", "file", path, "rows", len(rows))
		report.Table.Append(rows...)
	}

	return report, nil
}

func (a *Aggregator) collectFile(path string) ([]Row, error) {
	rs, err := a.Parser.ParseAlignment(path)
	if err != nil {
		return nil, err
	}
	return a.Collector.Collect(filepath.Base(path), rs)
}
