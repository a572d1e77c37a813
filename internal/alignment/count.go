package alignment

import (
	"fmt"

	"github.com/aria-lang/alnstats-go/internal/sequence"
)

// CountChars returns the number of characters in s that are not in the
// exclusion set. Each excluded entry must be a single character. A nil
// set is rejected; pass an empty, non-nil slice to count everything.
func CountChars(s string, exclude []string) (int, error) {
	if exclude == nil {
		return 0, &sequence.InvalidInputError{Param: "exclude", Reason: "exclusion set not provided"}
	}

	var skip [256]bool
	for _, e := range exclude {
		if len(e) != 1 {
			return 0, &sequence.InvalidInputError{
				Param:  "exclude",
				Reason: fmt.Sprintf("entries must be single characters, got %q", e),
			}
		}
		skip[e[0]] = true
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if !skip[s[i]] {
			n++
		}
	}
	return n, nil
}

// SequenceLengths returns the ungapped length of s, first counting
// ambiguous bases and then without them.
func SequenceLengths(s string, alpha sequence.Alphabet) (withAmbiguous, withoutAmbiguous int) {
	gap, amb := string(alpha.Gap), string(alpha.Ambiguous)

	// Both exclusion sets are well formed, so CountChars cannot fail here.
	withAmbiguous, _ = CountChars(s, []string{gap})
	withoutAmbiguous, _ = CountChars(s, []string{gap, amb})
	return withAmbiguous, withoutAmbiguous
}
