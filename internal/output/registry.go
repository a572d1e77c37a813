// Package output renders statistics tables as delimited text or JSON.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/aria-lang/alnstats-go/internal/stats"
)

// Options controls table rendering.
type Options struct {
	// Index prepends a 1-based "row" column.
	Index bool
}

// WriterFunc renders a table to w.
type WriterFunc func(w io.Writer, t *stats.Table, opts Options) error

// Writers maps a format name to its writer. Register adds to it from
// init blocks in this package.
var Writers = map[string]WriterFunc{}

// Register installs fn for format. The last registration wins.
func Register(format string, fn WriterFunc) {
	Writers[format] = fn
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(Writers))
	for name := range Writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supported reports whether a writer is registered for format.
func Supported(format string) bool {
	_, ok := Writers[format]
	return ok
}

// Write renders t to w in the given format.
func Write(format string, w io.Writer, t *stats.Table, opts Options) error {
	fn, ok := Writers[format]
	if !ok {
		return &sequence.InvalidInputError{
			Param:  "format",
			Reason: fmt.Sprintf("unknown output format %q (want one of %v)", format, Formats()),
		}
	}
	return fn(w, t, opts)
}

// IsBrokenPipe reports whether err comes from a reader closing the pipe
// early, as `head` does.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
