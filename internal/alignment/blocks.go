package alignment

import (
	"fmt"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// Block is a maximal run of positions where neither sequence of a pair
// has a gap.
type Block struct {
	Start  int
	Length int
}

// End returns the position one past the last site of the block.
func (b Block) End() int {
	return b.Start + b.Length
}

func (b Block) String() string {
	return fmt.Sprintf("[%d,%d)", b.Start, b.End())
}

// AlignedBlocks returns every jointly aligned block of the pair, left to
// right. Pairs with no jointly aligned position yield no block.
func AlignedBlocks(seq1, seq2 string, gap byte) ([]Block, error) {
	if len(seq1) != len(seq2) {
		return nil, &sequence.LengthMismatchError{Len1: len(seq1), Len2: len(seq2)}
	}

	blocks := make([]Block, 0)
	run := 0
	for i := 0; i < len(seq1); i++ {
		if seq1[i] == gap || seq2[i] == gap {
			if run > 0 {
				blocks = append(blocks, Block{Start: i - run, Length: run})
			}
			run = 0
			continue
		}
		run++
	}
	if run > 0 {
		blocks = append(blocks, Block{Start: len(seq1) - run, Length: run})
	}

	return blocks, nil
}

// LongestAlignedBlock returns the length of the longest jointly aligned
// block of the pair, or 0 when every position has a gap in at least one
// of the sequences.
func LongestAlignedBlock(seq1, seq2 string, gap byte) (int, error) {
	if len(seq1) != len(seq2) {
		return 0, &sequence.LengthMismatchError{Len1: len(seq1), Len2: len(seq2)}
	}

	longest, run := 0, 0
	for i := 0; i < len(seq1); i++ {
		if seq1[i] == gap || seq2[i] == gap {
			// the running block ends here; a new one starts after the gap
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}

	return longest, nil
}
