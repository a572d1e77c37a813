package alignment

// CountGapBlocks returns the number of maximal runs of the gap character
// in seq. A block starts at every gap that is not preceded by a gap.
func CountGapBlocks(seq string, gap byte) int {
	blocks := 0
	inGap := false

	for i := 0; i < len(seq); i++ {
		if seq[i] == gap {
			if !inGap {
				blocks++
				inGap = true
			}
		} else {
			inGap = false
		}
	}

	return blocks
}

// CountGaps returns the total number of gap characters in seq.
func CountGaps(seq string, gap byte) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == gap {
			n++
		}
	}
	return n
}

// GapProfile summarizes the gaps of one sequence.
type GapProfile struct {
	Blocks int
	Gaps   int
}

// Gaps returns the gap block and gap counts of seq in one call.
func Gaps(seq string, gap byte) GapProfile {
	return GapProfile{Blocks: CountGapBlocks(seq, gap), Gaps: CountGaps(seq, gap)}
}
