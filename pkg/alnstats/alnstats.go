// Package alnstats provides a high-level API for pairwise statistics over
// multiple sequence alignments.
//
// Every pair of sequences in an alignment yields one row: alignment
// length, jointly aligned sites, matches, mismatches, the longest block
// of jointly aligned columns and the gap profile of each sequence.
//
// Example usage:
//
//	report, err := alnstats.StatsForDirectory("alignments/", alnstats.DefaultConfig(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := alnstats.WriteTable(os.Stdout, report.Table, alnstats.DefaultConfig()); err != nil {
//	    log.Fatal(err)
//	}
package alnstats

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aria-lang/alnstats-go/internal/alignment"
	"github.com/aria-lang/alnstats-go/internal/alnio"
	"github.com/aria-lang/alnstats-go/internal/config"
	"github.com/aria-lang/alnstats-go/internal/output"
	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/aria-lang/alnstats-go/internal/stats"
)

// Re-export types for convenience
type (
	Alphabet      = sequence.Alphabet
	Sequence      = sequence.Sequence
	RecordSet     = sequence.RecordSet
	Comparison    = alignment.Comparison
	Block         = alignment.Block
	Row           = stats.Row
	Table         = stats.Table
	Report        = stats.Report
	FailurePolicy = stats.FailurePolicy
	Config        = config.Config
)

// Failure policies.
const (
	FailFast = stats.FailFast
	Collect  = stats.Collect
)

// Columns returns the report column names, in order.
func Columns() []string {
	return append([]string(nil), stats.Columns...)
}

// DefaultConfig returns the default settings: '-' gaps, 'N' ambiguous
// bases, ".aln" files and TSV output.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// NewAlphabet creates an alphabet from single-character gap and
// ambiguous symbols.
func NewAlphabet(gap, ambiguous string) (Alphabet, error) {
	return sequence.NewAlphabet(gap, ambiguous)
}

// Compare counts aligned sites, matches and mismatches between two
// aligned sequences.
func Compare(seq1, seq2 string, alpha Alphabet) (*Comparison, error) {
	return alignment.Compare(seq1, seq2, alpha)
}

// CountChars counts the characters of s not listed in exclude.
func CountChars(s string, exclude []string) (int, error) {
	return alignment.CountChars(s, exclude)
}

// CountGapBlocks counts maximal runs of gap in seq.
func CountGapBlocks(seq string, gap byte) int {
	return alignment.CountGapBlocks(seq, gap)
}

// LongestAlignedBlock returns the length of the longest run of columns
// where neither sequence has a gap.
func LongestAlignedBlock(seq1, seq2 string, gap byte) (int, error) {
	return alignment.LongestAlignedBlock(seq1, seq2, gap)
}

// PairStats computes the statistics row of two aligned sequences outside
// of any alignment file.
func PairStats(s1, s2 Sequence, alpha Alphabet) (Row, error) {
	return stats.PairRow("", s1, s2, alpha)
}

func parser(cfg Config) *alnio.Parser {
	p := alnio.NewParser()
	p.HeaderDelimiter = cfg.HeaderDelimiter
	return p
}

// NewCollector builds the per-alignment collector described by cfg.
func NewCollector(cfg Config, log *slog.Logger) (*stats.Collector, error) {
	alpha, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}
	c := stats.NewCollector(alpha)
	c.Uppercase = cfg.Uppercase
	c.Workers = cfg.Workers
	c.Logger = log
	return c, nil
}

// ReadAlignment reads an alignment file. "-" reads standard input and
// gzip input is detected.
func ReadAlignment(path string, cfg Config) (*RecordSet, error) {
	return parser(cfg).ParseAlignment(path)
}

// StatsForAlignment computes every pair row of an alignment that has
// already been read.
func StatsForAlignment(name string, rs *RecordSet, cfg Config, log *slog.Logger) ([]Row, error) {
	c, err := NewCollector(cfg, log)
	if err != nil {
		return nil, err
	}
	return c.Collect(name, rs)
}

// StatsForFile computes every pair row of one alignment file.
func StatsForFile(path string, cfg Config, log *slog.Logger) (*Table, error) {
	c, err := NewCollector(cfg, log)
	if err != nil {
		return nil, err
	}
	rs, err := parser(cfg).ParseAlignment(path)
	if err != nil {
		return nil, err
	}
	name := path
	if path != "-" {
		name = filepath.Base(path)
	}
	rows, err := c.Collect(name, rs)
	if err != nil {
		return nil, err
	}
	t := stats.NewTable()
	t.Append(rows...)
	return t, nil
}

// StatsForDirectory computes the rows of every file in dir whose name
// ends in cfg.Suffix.
func StatsForDirectory(dir string, cfg Config, log *slog.Logger) (*Report, error) {
	c, err := NewCollector(cfg, log)
	if err != nil {
		return nil, err
	}
	agg := &stats.Aggregator{
		Lister:    alnio.DirLister{},
		Parser:    parser(cfg),
		Collector: c,
		Policy:    cfg.Policy(),
		Logger:    log,
	}
	return agg.Aggregate(dir, cfg.Suffix)
}

// WriteTable renders t in cfg.Format.
func WriteTable(w io.Writer, t *Table, cfg Config) error {
	return output.Write(cfg.Format, w, t, cfg.OutputOptions())
}

// Formats returns the supported output format names.
func Formats() []string {
	return output.Formats()
}

// Version returns the alnstats version.
func Version() string {
	return "1.0.0"
}

// Info returns information about alnstats.
func Info() string {
	return fmt.Sprintf(`alnstats v%s - Pairwise Alignment Statistics

Computes per-pair statistics for every alignment file in a directory.

Columns:
  aln_name, sp1_ID, sp2_ID, aln_len, aln_sites,
  sp1_seqlen_w_N, sp2_seqlen_w_N, sp1_seqlen_wo_N, sp2_seqlen_wo_N,
  matches, mismatches, longest_aligned_block,
  sp1_gap_blocks, sp2_gap_blocks, sp1_gaps, sp2_gaps

Output formats: %v
`, Version(), Formats())
}
