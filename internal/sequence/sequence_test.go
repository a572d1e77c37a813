package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	tests := []struct {
		name      string
		gap       string
		ambiguous string
		wantErr   bool
	}{
		{name: "defaults", gap: "-", ambiguous: "N"},
		{name: "dot gap", gap: ".", ambiguous: "X"},
		{name: "empty gap", gap: "", ambiguous: "N", wantErr: true},
		{name: "multi-char gap", gap: "--", ambiguous: "N", wantErr: true},
		{name: "multi-char ambiguous", gap: "-", ambiguous: "NN", wantErr: true},
		{name: "same symbol", gap: "N", ambiguous: "N", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlphabet(tt.gap, tt.ambiguous)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &InvalidInputError{}, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, a.IsGap(tt.gap[0]))
			assert.True(t, a.IsAmbiguous(tt.ambiguous[0]))
		})
	}
}

func TestDefaultAlphabet(t *testing.T) {
	a := DefaultAlphabet()
	assert.Equal(t, byte('-'), a.Gap)
	assert.Equal(t, byte('N'), a.Ambiguous)
	assert.NoError(t, a.Validate())
	assert.Error(t, Alphabet{}.Validate())
}

func TestRecordSetPreservesOrder(t *testing.T) {
	rs := NewRecordSet()
	require.NoError(t, rs.Add("zebra", "AC-T"))
	require.NoError(t, rs.Add("apple", "ACGT"))
	require.NoError(t, rs.Add("mango", "A--T"))

	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, []string{"zebra", "apple", "mango"}, rs.IDs())

	bases, ok := rs.Get("apple")
	require.True(t, ok)
	assert.Equal(t, "ACGT", bases)

	_, ok = rs.Get("kiwi")
	assert.False(t, ok)

	assert.Equal(t, Sequence{ID: "mango", Bases: "A--T"}, rs.At(2))
	assert.Equal(t, 4, rs.At(0).Len())
}

func TestRecordSetDuplicateID(t *testing.T) {
	rs := NewRecordSet()
	require.NoError(t, rs.Add("s1", "ACGT"))

	err := rs.Add("s1", "TTTT")
	require.Error(t, err)
	assert.IsType(t, &DuplicateIDError{}, err)
	assert.Equal(t, 1, rs.Len())
}

func TestRecordSetIDsIsACopy(t *testing.T) {
	rs := NewRecordSet()
	require.NoError(t, rs.Add("a", "A"))
	ids := rs.IDs()
	ids[0] = "changed"
	assert.Equal(t, []string{"a"}, rs.IDs())
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []Pair
	}{
		{name: "empty", ids: nil, want: nil},
		{name: "single", ids: []string{"a"}, want: nil},
		{name: "two", ids: []string{"a", "b"}, want: []Pair{{0, 1}}},
		{
			name: "four",
			ids:  []string{"d", "c", "b", "a"},
			want: []Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRecordSet()
			for _, id := range tt.ids {
				require.NoError(t, rs.Add(id, "ACGT"))
			}
			got := rs.Pairs()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), rs.PairCount())
		})
	}
}

func TestUppercase(t *testing.T) {
	rs := NewRecordSet()
	require.NoError(t, rs.Add("a", "acgn-"))
	require.NoError(t, rs.Add("b", "AcGt-"))

	up := rs.Uppercase()
	assert.Equal(t, []string{"a", "b"}, up.IDs())

	got, _ := up.Get("a")
	assert.Equal(t, "ACGN-", got)

	orig, _ := rs.Get("a")
	assert.Equal(t, "acgn-", orig, "source set must be left untouched")
}

func TestErrorMessages(t *testing.T) {
	var err StatsError = &LengthMismatchError{Alignment: "x.aln", ID1: "a", ID2: "b", Len1: 4, Len2: 5}
	assert.Contains(t, err.Error(), "x.aln")
	assert.Contains(t, err.Error(), `"a"`)

	err = &LengthMismatchError{Len1: 1, Len2: 2}
	assert.Equal(t, "sequence lengths differ: 1 != 2", err.Error())

	err = &InsufficientSequencesError{Alignment: "one.aln", Count: 1}
	assert.Contains(t, err.Error(), "found 1")

	err = &NoMatchingFilesError{Dir: "/tmp/x", Suffix: ".aln"}
	assert.Contains(t, err.Error(), `".aln"`)
}
