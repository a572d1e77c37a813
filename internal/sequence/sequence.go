// Package sequence provides aligned sequence records and the ordered
// record sets parsed from alignment files.
//
// A RecordSet keeps identifiers in order of first appearance. That order
// drives pair enumeration and therefore the row order of every report, so
// it is held explicitly as a key list next to the lookup table instead of
// relying on map iteration.
package sequence

import (
	"fmt"
	"strings"
)

// Default alignment symbols.
const (
	DefaultGap       = '-'
	DefaultAmbiguous = 'N'
)

// Alphabet names the two symbols with special meaning in an alignment:
// the gap character and the ambiguous-base marker.
type Alphabet struct {
	Gap       byte
	Ambiguous byte
}

// DefaultAlphabet returns the alphabet using '-' for gaps and 'N' for
// ambiguous bases.
func DefaultAlphabet() Alphabet {
	return Alphabet{Gap: DefaultGap, Ambiguous: DefaultAmbiguous}
}

// NewAlphabet builds an alphabet from single-character strings.
func NewAlphabet(gap, ambiguous string) (Alphabet, error) {
	if len(gap) != 1 {
		return Alphabet{}, &InvalidInputError{Param: "gap", Reason: fmt.Sprintf("must be a single character, got %q", gap)}
	}
	if len(ambiguous) != 1 {
		return Alphabet{}, &InvalidInputError{Param: "ambiguous", Reason: fmt.Sprintf("must be a single character, got %q", ambiguous)}
	}
	a := Alphabet{Gap: gap[0], Ambiguous: ambiguous[0]}
	if err := a.Validate(); err != nil {
		return Alphabet{}, err
	}
	return a, nil
}

// Validate checks that the gap and ambiguous symbols are set and distinct.
func (a Alphabet) Validate() error {
	if a.Gap == 0 {
		return &InvalidInputError{Param: "gap", Reason: "gap character is not set"}
	}
	if a.Ambiguous == 0 {
		return &InvalidInputError{Param: "ambiguous", Reason: "ambiguous character is not set"}
	}
	if a.Gap == a.Ambiguous {
		return &InvalidInputError{Param: "ambiguous", Reason: fmt.Sprintf("must differ from the gap character %q", a.Gap)}
	}
	return nil
}

// IsGap reports whether c is the gap character.
func (a Alphabet) IsGap(c byte) bool {
	return c == a.Gap
}

// IsAmbiguous reports whether c is the ambiguous marker.
func (a Alphabet) IsAmbiguous(c byte) bool {
	return c == a.Ambiguous
}

func (a Alphabet) String() string {
	return fmt.Sprintf("gap=%q ambiguous=%q", a.Gap, a.Ambiguous)
}

// Sequence is one aligned sequence: an identifier and its bases,
// gap characters included.
type Sequence struct {
	ID    string
	Bases string
}

// Len returns the aligned length, gaps included.
func (s Sequence) Len() int {
	return len(s.Bases)
}

// RecordSet is an ordered, immutable-once-built mapping from sequence
// identifier to aligned bases.
type RecordSet struct {
	ids   []string
	index map[string]int
	bases []string
}

// NewRecordSet creates an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{index: make(map[string]int)}
}

// Add appends a record. Identifiers must be unique within the set.
func (rs *RecordSet) Add(id, bases string) error {
	if _, ok := rs.index[id]; ok {
		return &DuplicateIDError{ID: id}
	}
	rs.index[id] = len(rs.ids)
	rs.ids = append(rs.ids, id)
	rs.bases = append(rs.bases, bases)
	return nil
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.ids)
}

// IDs returns the identifiers in order of first appearance.
func (rs *RecordSet) IDs() []string {
	out := make([]string, len(rs.ids))
	copy(out, rs.ids)
	return out
}

// Get returns the bases for id.
func (rs *RecordSet) Get(id string) (string, bool) {
	i, ok := rs.index[id]
	if !ok {
		return "", false
	}
	return rs.bases[i], true
}

// At returns the i-th record in insertion order.
func (rs *RecordSet) At(i int) Sequence {
	return Sequence{ID: rs.ids[i], Bases: rs.bases[i]}
}

// Uppercase returns a copy of the set with every sequence upper-cased.
func (rs *RecordSet) Uppercase() *RecordSet {
	out := &RecordSet{
		ids:   rs.IDs(),
		index: make(map[string]int, len(rs.index)),
		bases: make([]string, len(rs.bases)),
	}
	for id, i := range rs.index {
		out.index[id] = i
	}
	for i, b := range rs.bases {
		out.bases[i] = strings.ToUpper(b)
	}
	return out
}

// Pair is an unordered pair of distinct records, referenced by position.
type Pair struct {
	First  int
	Second int
}

// Pairs enumerates every unordered pair of records. All pairs with the
// first record come before any pair starting at the second, and so on:
// (0,1), (0,2), ..., (1,2), ...
func (rs *RecordSet) Pairs() []Pair {
	n := len(rs.ids)
	if n < 2 {
		return nil
	}
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{First: i, Second: j})
		}
	}
	return pairs
}

// PairCount returns n*(n-1)/2 for a set of n records.
func (rs *RecordSet) PairCount() int {
	n := len(rs.ids)
	return n * (n - 1) / 2
}
