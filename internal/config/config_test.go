package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/aria-lang/alnstats-go/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	alpha, err := cfg.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, sequence.DefaultAlphabet(), alpha)
	assert.Equal(t, ".aln", cfg.Suffix)
	assert.Equal(t, "tsv", cfg.Format)
	assert.Equal(t, stats.FailFast, cfg.Policy())
	assert.False(t, cfg.OutputOptions().Index)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alnstats.yaml")
	content := "gap: \".\"\nambiguous: X\nsuffix: .fasta\nformat: csv\nindex: true\nworkers: 4\nfailure_policy: collect\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Gap)
	assert.Equal(t, "X", cfg.Ambiguous)
	assert.Equal(t, ".fasta", cfg.Suffix)
	assert.Equal(t, "csv", cfg.Format)
	assert.True(t, cfg.Index)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, stats.Collect, cfg.Policy())
	assert.False(t, cfg.Uppercase)
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("uppercase: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Uppercase)
	assert.Equal(t, DefaultGap, cfg.Gap)
	assert.Equal(t, DefaultSuffix, cfg.Suffix)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.IsType(t, &sequence.InvalidPathError{}, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gap: [1, 2\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("gap: \"--\"\n"), 0o644))
	_, err = Load(invalid)
	require.Error(t, err)
	assert.IsType(t, &sequence.InvalidInputError{}, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty gap", func(c *Config) { c.Gap = "" }},
		{"long ambiguous", func(c *Config) { c.Ambiguous = "NN" }},
		{"same symbols", func(c *Config) { c.Ambiguous = "-" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"unknown policy", func(c *Config) { c.FailurePolicy = "retry" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.IsType(t, &sequence.InvalidInputError{}, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.HeaderDelimiter = " "
	data, err := cfg.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
