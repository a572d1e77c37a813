package stats

import (
	"log/slog"
	"runtime"

	"github.com/exascience/pargo/parallel"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// Collector computes one row per sequence pair of an alignment.
type Collector struct {
	Alphabet sequence.Alphabet

	// Uppercase folds both sequences to upper case before comparing.
	Uppercase bool

	// Workers > 1 computes pair rows in parallel batches, 0 uses
	// GOMAXPROCS. Row order is the same either way.
	Workers int

	Logger *slog.Logger
}

// NewCollector creates a sequential collector for the given alphabet.
func NewCollector(alpha sequence.Alphabet) *Collector {
	return &Collector{Alphabet: alpha, Workers: 1}
}

func (c *Collector) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Collect returns the rows for every pair of rs, in pair enumeration
// order. name is the display name written to the aln_name column.
//
// A set with fewer than two sequences fails with
// InsufficientSequencesError. A pair of unequal length fails the whole
// alignment with LengthMismatchError; no partial rows are returned.
func (c *Collector) Collect(name string, rs *sequence.RecordSet) ([]Row, error) {
	if err := c.Alphabet.Validate(); err != nil {
		return nil, err
	}
	if rs.Len() < 2 {
		return nil, &sequence.InsufficientSequencesError{Alignment: name, Count: rs.Len()}
	}
	if c.Uppercase {
		rs = rs.Uppercase()
	}

	pairs := rs.Pairs()
	rows := make([]Row, len(pairs))
	log := c.logger().With("alignment", name)
	log.Debug("collecting pair statistics", "sequences", rs.Len(), "pairs", len(pairs))

	compute := func(i int) error {
		p := pairs[i]
		s1, s2 := rs.At(p.First), rs.At(p.Second)
		row, err := PairRow(name, s1, s2, c.Alphabet)
		if err != nil {
			return err
		}
		rows[i] = row
		log.Debug("pair done", "id1", s1.ID, "id2", s2.ID,
			"aln_sites", row.AlignedSites, "mismatches", row.Mismatches)
		return nil
	}

	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers <= 1 || len(pairs) < 2 {
		for i := range pairs {
			if err := compute(i); err != nil {
				return nil, err
			}
		}
		return rows, nil
	}

	errs := make([]error, len(pairs))
	parallel.Range(0, len(pairs), workers, func(low, high int) {
		for i := low; i < high; i++ {
			errs[i] = compute(i)
		}
	})
	// Report the first failing pair in enumeration order, as the
	// sequential path would.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return rows, nil
}
