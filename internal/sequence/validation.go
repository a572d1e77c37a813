package sequence

import "fmt"

// StatsError is implemented by every error raised while validating
// alignment input or computing statistics.
type StatsError interface {
	error
	IsStatsError()
}

// InvalidPathError is returned when a path does not exist or is not of
// the expected kind.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

func (e *InvalidPathError) IsStatsError() {}

// LengthMismatchError is returned when two compared sequences differ in
// aligned length.
type LengthMismatchError struct {
	Alignment string
	ID1       string
	ID2       string
	Len1      int
	Len2      int
}

func (e *LengthMismatchError) Error() string {
	if e.ID1 == "" && e.ID2 == "" {
		return fmt.Sprintf("sequence lengths differ: %d != %d", e.Len1, e.Len2)
	}
	msg := fmt.Sprintf("sequences %q (%d) and %q (%d) differ in length", e.ID1, e.Len1, e.ID2, e.Len2)
	if e.Alignment != "" {
		msg = e.Alignment + ": " + msg
	}
	return msg
}

func (e *LengthMismatchError) IsStatsError() {}

// InvalidInputError is returned for malformed parameters.
type InvalidInputError struct {
	Param  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func (e *InvalidInputError) IsStatsError() {}

// NoMatchingFilesError is returned when a directory holds no file with
// the requested suffix.
type NoMatchingFilesError struct {
	Dir    string
	Suffix string
}

func (e *NoMatchingFilesError) Error() string {
	return fmt.Sprintf("no files ending in %q found in %s", e.Suffix, e.Dir)
}

func (e *NoMatchingFilesError) IsStatsError() {}

// InsufficientSequencesError is returned when an alignment has fewer
// than two sequences and so yields no pair.
type InsufficientSequencesError struct {
	Alignment string
	Count     int
}

func (e *InsufficientSequencesError) Error() string {
	return fmt.Sprintf("%s: need at least 2 sequences to form a pair, found %d", e.Alignment, e.Count)
}

func (e *InsufficientSequencesError) IsStatsError() {}

// EmptyAlignmentError is the same condition as InsufficientSequencesError.
type EmptyAlignmentError = InsufficientSequencesError

// DuplicateIDError is returned when an identifier occurs twice in one
// alignment.
type DuplicateIDError struct {
	Alignment string
	ID        string
}

func (e *DuplicateIDError) Error() string {
	if e.Alignment == "" {
		return fmt.Sprintf("duplicate sequence identifier %q", e.ID)
	}
	return fmt.Sprintf("%s: duplicate sequence identifier %q", e.Alignment, e.ID)
}

func (e *DuplicateIDError) IsStatsError() {}

// MalformedRecordError is returned when an alignment file cannot be read
// as a record stream.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

func (e *MalformedRecordError) IsStatsError() {}
