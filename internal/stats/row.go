// Package stats turns alignment record sets into pairwise statistics
// rows and aggregates them across the alignment files of a directory.
package stats

import (
	"strconv"

	"github.com/aria-lang/alnstats-go/internal/alignment"
	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// Columns is the output schema, in order. Column order is part of the
// report format and must not change.
var Columns = []string{
	"aln_name",
	"sp1_ID",
	"sp2_ID",
	"aln_len",
	"aln_sites",
	"sp1_seqlen_w_N",
	"sp2_seqlen_w_N",
	"sp1_seqlen_wo_N",
	"sp2_seqlen_wo_N",
	"matches",
	"mismatches",
	"longest_aligned_block",
	"sp1_gap_blocks",
	"sp2_gap_blocks",
	"sp1_gaps",
	"sp2_gaps",
}

// Row holds the statistics for one pair of sequences from one alignment.
type Row struct {
	Alignment           string `json:"aln_name"`
	ID1                 string `json:"sp1_ID"`
	ID2                 string `json:"sp2_ID"`
	AlignmentLength     int    `json:"aln_len"`
	AlignedSites        int    `json:"aln_sites"`
	SeqLen1WithAmbig    int    `json:"sp1_seqlen_w_N"`
	SeqLen2WithAmbig    int    `json:"sp2_seqlen_w_N"`
	SeqLen1WithoutAmbig int    `json:"sp1_seqlen_wo_N"`
	SeqLen2WithoutAmbig int    `json:"sp2_seqlen_wo_N"`
	Matches             int    `json:"matches"`
	Mismatches          int    `json:"mismatches"`
	LongestAlignedBlock int    `json:"longest_aligned_block"`
	GapBlocks1          int    `json:"sp1_gap_blocks"`
	GapBlocks2          int    `json:"sp2_gap_blocks"`
	Gaps1               int    `json:"sp1_gaps"`
	Gaps2               int    `json:"sp2_gaps"`
}

// Values returns the row's fields as strings, in Columns order.
func (r Row) Values() []string {
	return []string{
		r.Alignment,
		r.ID1,
		r.ID2,
		strconv.Itoa(r.AlignmentLength),
		strconv.Itoa(r.AlignedSites),
		strconv.Itoa(r.SeqLen1WithAmbig),
		strconv.Itoa(r.SeqLen2WithAmbig),
		strconv.Itoa(r.SeqLen1WithoutAmbig),
		strconv.Itoa(r.SeqLen2WithoutAmbig),
		strconv.Itoa(r.Matches),
		strconv.Itoa(r.Mismatches),
		strconv.Itoa(r.LongestAlignedBlock),
		strconv.Itoa(r.GapBlocks1),
		strconv.Itoa(r.GapBlocks2),
		strconv.Itoa(r.Gaps1),
		strconv.Itoa(r.Gaps2),
	}
}

// PairRow computes the row for two aligned sequences of the alignment
// called name.
func PairRow(name string, s1, s2 sequence.Sequence, alpha sequence.Alphabet) (Row, error) {
	if s1.Len() != s2.Len() {
		return Row{}, &sequence.LengthMismatchError{
			Alignment: name,
			ID1:       s1.ID,
			ID2:       s2.ID,
			Len1:      s1.Len(),
			Len2:      s2.Len(),
		}
	}

	cmp, err := alignment.Compare(s1.Bases, s2.Bases, alpha)
	if err != nil {
		return Row{}, err
	}
	longest, err := alignment.LongestAlignedBlock(s1.Bases, s2.Bases, alpha.Gap)
	if err != nil {
		return Row{}, err
	}

	with1, without1 := alignment.SequenceLengths(s1.Bases, alpha)
	with2, without2 := alignment.SequenceLengths(s2.Bases, alpha)
	gaps1 := alignment.Gaps(s1.Bases, alpha.Gap)
	gaps2 := alignment.Gaps(s2.Bases, alpha.Gap)

	return Row{
		Alignment:           name,
		ID1:                 s1.ID,
		ID2:                 s2.ID,
		AlignmentLength:     cmp.Length,
		AlignedSites:        cmp.AlignedSites,
		SeqLen1WithAmbig:    with1,
		SeqLen2WithAmbig:    with2,
		SeqLen1WithoutAmbig: without1,
		SeqLen2WithoutAmbig: without2,
		Matches:             cmp.Matches,
		Mismatches:          cmp.Mismatches,
		LongestAlignedBlock: longest,
		GapBlocks1:          gaps1.Blocks,
		GapBlocks2:          gaps2.Blocks,
		Gaps1:               gaps1.Gaps,
		Gaps2:               gaps2.Gaps,
	}, nil
}
