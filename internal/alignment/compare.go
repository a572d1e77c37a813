// Package alignment computes statistics over pairs of pre-aligned
// sequences: per-site comparison, gap runs and jointly aligned blocks.
//
// Every function here is a pure function of its inputs. Sequences are
// compared byte by byte; alignment files are expected to be ASCII.
package alignment

import (
	"fmt"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// Comparison holds the site-level counts for one aligned pair.
//
// Every position is exactly one of match, mismatch or neither. Neither
// covers positions where the characters differ and one of them is the
// ambiguous marker.
type Comparison struct {
	Length       int
	AlignedSites int
	Matches      int
	Mismatches   int
}

// Neither returns the number of positions counted as neither a match nor
// a mismatch.
func (c *Comparison) Neither() int {
	return c.Length - c.Matches - c.Mismatches
}

// GappedSites returns the number of positions where at least one of the
// two sequences has a gap.
func (c *Comparison) GappedSites() int {
	return c.Length - c.AlignedSites
}

func (c *Comparison) String() string {
	return fmt.Sprintf("Comparison { length: %d, aligned: %d, matches: %d, mismatches: %d }",
		c.Length, c.AlignedSites, c.Matches, c.Mismatches)
}

// Compare scans two equal-length aligned sequences position by position.
//
// A position is an aligned site when neither character is a gap. It is a
// match when both characters are identical, gap against gap included. It
// is a mismatch when the characters differ and neither is the ambiguous
// marker.
func Compare(seq1, seq2 string, alpha sequence.Alphabet) (*Comparison, error) {
	if len(seq1) != len(seq2) {
		return nil, &sequence.LengthMismatchError{Len1: len(seq1), Len2: len(seq2)}
	}

	c := &Comparison{Length: len(seq1)}
	for i := 0; i < len(seq1); i++ {
		a, b := seq1[i], seq2[i]

		if !alpha.IsGap(a) && !alpha.IsGap(b) {
			c.AlignedSites++
		}

		switch {
		case a == b:
			c.Matches++
		case !alpha.IsAmbiguous(a) && !alpha.IsAmbiguous(b):
			c.Mismatches++
		}
	}

	return c, nil
}
