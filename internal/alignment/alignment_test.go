package alignment

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name       string
		seq1       string
		seq2       string
		aligned    int
		matches    int
		mismatches int
	}{
		{"identical", "ACGT", "ACGT", 4, 4, 0},
		{"one mismatch", "ACGT", "ACGA", 4, 3, 1},
		{"gap against base", "AC-T", "ACGT", 3, 3, 1},
		{"gap against gap is a match", "A--T", "A--T", 2, 4, 0},
		{"ambiguous against base", "ANGT", "ACGT", 4, 3, 0},
		{"ambiguous against ambiguous", "ANGT", "ANGT", 4, 4, 0},
		{"ambiguous against gap", "AN", "A-", 1, 1, 0},
		{"gap against different base counts mismatch", "A-", "AC", 1, 1, 1},
		{"empty", "", "", 0, 0, 0},
		{"case sensitive", "acgt", "ACGT", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Compare(tt.seq1, tt.seq2, sequence.DefaultAlphabet())
			require.NoError(t, err)
			assert.Equal(t, len(tt.seq1), c.Length)
			assert.Equal(t, tt.aligned, c.AlignedSites)
			assert.Equal(t, tt.matches, c.Matches)
			assert.Equal(t, tt.mismatches, c.Mismatches)
		})
	}
}

func TestCompareMixedScenario(t *testing.T) {
	c, err := Compare("ACGT-N", "ACGA--", sequence.DefaultAlphabet())
	require.NoError(t, err)

	assert.Equal(t, 6, c.Length)
	assert.Equal(t, 4, c.AlignedSites)
	assert.Equal(t, 4, c.Matches)
	assert.Equal(t, 1, c.Mismatches)
	assert.Equal(t, 1, c.Neither())
	assert.Equal(t, 2, c.GappedSites())
}

func TestCompareCustomAlphabet(t *testing.T) {
	alpha, err := sequence.NewAlphabet(".", "X")
	require.NoError(t, err)

	c, err := Compare("AC.X-", "ACTGA", alpha)
	require.NoError(t, err)
	assert.Equal(t, 4, c.AlignedSites)
	assert.Equal(t, 2, c.Matches)
	// '.' vs 'T' and '-' vs 'A' are plain mismatches under this alphabet
	assert.Equal(t, 2, c.Mismatches)
}

func TestCompareLengthMismatch(t *testing.T) {
	_, err := Compare("ACGT", "ACG", sequence.DefaultAlphabet())
	require.Error(t, err)

	var lm *sequence.LengthMismatchError
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 4, lm.Len1)
	assert.Equal(t, 3, lm.Len2)
}

func TestCountChars(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		exclude []string
		want    int
	}{
		{"nothing excluded", "AC-GN", []string{}, 5},
		{"gaps excluded", "AC-GN", []string{"-"}, 4},
		{"gaps and ambiguous excluded", "AC-GN", []string{"-", "N"}, 3},
		{"all excluded", "---", []string{"-"}, 0},
		{"empty string", "", []string{"-"}, 0},
		{"repeated entries", "NN-A", []string{"N", "N"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountChars(tt.s, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountCharsInvalidExclusion(t *testing.T) {
	_, err := CountChars("ACGT", nil)
	require.Error(t, err)
	assert.IsType(t, &sequence.InvalidInputError{}, err)

	_, err = CountChars("ACGT", []string{"-", "NN"})
	require.Error(t, err)
	assert.IsType(t, &sequence.InvalidInputError{}, err)

	_, err = CountChars("ACGT", []string{""})
	require.Error(t, err)
}

func TestSequenceLengths(t *testing.T) {
	with, without := SequenceLengths("ACGT-N", sequence.DefaultAlphabet())
	assert.Equal(t, 5, with)
	assert.Equal(t, 4, without)

	with, without = SequenceLengths("ACGA--", sequence.DefaultAlphabet())
	assert.Equal(t, 4, with)
	assert.Equal(t, 4, without)
}

func TestCountGapBlocks(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want int
	}{
		{"no gaps", "ACGT", 0},
		{"empty", "", 0},
		{"single gap", "AC-GT", 1},
		{"one long run", "A----T", 1},
		{"leading and trailing", "-ACGT-", 2},
		{"all gaps", "-----", 1},
		{"alternating", "-A-C-G", 3},
		{"paired runs", "--AC--GT--", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountGapBlocks(tt.seq, '-'))
		})
	}
}

func TestCountGaps(t *testing.T) {
	assert.Equal(t, 0, CountGaps("ACGT", '-'))
	assert.Equal(t, 6, CountGaps("--AC--GT--", '-'))
	assert.Equal(t, 2, CountGaps("A..T", '.'))
	assert.Equal(t, GapProfile{Blocks: 3, Gaps: 6}, Gaps("--AC--GT--", '-'))
}

func TestLongestAlignedBlock(t *testing.T) {
	tests := []struct {
		name string
		seq1 string
		seq2 string
		want int
	}{
		{"identical without gaps", "ACGTACGT", "ACGTACGT", 8},
		{"all gaps", "----", "----", 0},
		{"complementary gaps", "AC--", "--GT", 0},
		{"empty", "", "", 0},
		{"block at end", "A-CGT", "AACGT", 3},
		{"block at start", "ACG-T", "ACGTT", 3},
		{"gap in second only", "ACGTAC", "AC-TAC", 3},
		{"separated blocks", "--AC--GT--", "--AC--GT--", 2},
		{"single site", "-A-", "-C-", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LongestAlignedBlock(tt.seq1, tt.seq2, '-')
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLongestAlignedBlockLengthMismatch(t *testing.T) {
	_, err := LongestAlignedBlock("AC", "ACG", '-')
	require.Error(t, err)
	assert.IsType(t, &sequence.LengthMismatchError{}, err)

	_, err = AlignedBlocks("AC", "A", '-')
	require.Error(t, err)
}

func TestAlignedBlocks(t *testing.T) {
	blocks, err := AlignedBlocks("--AC--GTA-", "--AC-TGTAA", '-')
	require.NoError(t, err)
	assert.Equal(t, []Block{{Start: 2, Length: 2}, {Start: 6, Length: 3}}, blocks)
	assert.Equal(t, 9, blocks[1].End())
	assert.Equal(t, "[6,9)", blocks[1].String())

	blocks, err = AlignedBlocks("---", "---", '-')
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func randomAligned(r *rand.Rand, n int) string {
	const alphabet = "ACGTN--"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alpha := sequence.DefaultAlphabet()

	for i := 0; i < 500; i++ {
		n := r.Intn(60)
		s1, s2 := randomAligned(r, n), randomAligned(r, n)

		c, err := Compare(s1, s2, alpha)
		require.NoError(t, err)

		gapped := 0
		ambiguous := false
		for j := 0; j < n; j++ {
			if s1[j] == '-' || s2[j] == '-' {
				gapped++
			}
			if s1[j] == 'N' || s2[j] == 'N' {
				ambiguous = true
			}
		}
		assert.Equal(t, c.Length, c.AlignedSites+gapped)
		assert.LessOrEqual(t, c.Matches+c.Mismatches, c.Length)
		if !ambiguous {
			assert.Equal(t, c.Length, c.Matches+c.Mismatches)
		}

		for _, s := range []string{s1, s2} {
			blocks, gaps := CountGapBlocks(s, '-'), CountGaps(s, '-')
			assert.GreaterOrEqual(t, gaps, blocks)
			if gaps == blocks {
				assert.NotContains(t, s, "--")
			}
		}

		longest, err := LongestAlignedBlock(s1, s2, '-')
		require.NoError(t, err)
		all, err := AlignedBlocks(s1, s2, '-')
		require.NoError(t, err)
		want := 0
		total := 0
		for _, b := range all {
			total += b.Length
			if b.Length > want {
				want = b.Length
			}
		}
		assert.Equal(t, want, longest)
		assert.Equal(t, c.AlignedSites, total)
	}
}

func BenchmarkCompare(b *testing.B) {
	s1 := strings.Repeat("ACGT-NAC", 125)
	s2 := strings.Repeat("ACGA--AC", 125)
	alpha := sequence.DefaultAlphabet()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compare(s1, s2, alpha)
	}
}

func BenchmarkLongestAlignedBlock(b *testing.B) {
	s1 := strings.Repeat("ACGT-NAC", 125)
	s2 := strings.Repeat("ACGA--AC", 125)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = LongestAlignedBlock(s1, s2, '-')
	}
}
