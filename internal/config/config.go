// Package config holds run settings: alignment symbols, file selection,
// output and execution options. Settings come from defaults, an optional
// YAML file and command-line overrides, in that order.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aria-lang/alnstats-go/internal/output"
	"github.com/aria-lang/alnstats-go/internal/sequence"
	"github.com/aria-lang/alnstats-go/internal/stats"
)

// Defaults.
const (
	DefaultGap       = "-"
	DefaultAmbiguous = "N"
	DefaultSuffix    = ".aln"
	DefaultFormat    = "tsv"
)

// Config is the full set of run settings.
type Config struct {
	Gap             string `yaml:"gap"`
	Ambiguous       string `yaml:"ambiguous"`
	Suffix          string `yaml:"suffix"`
	HeaderDelimiter string `yaml:"header_delimiter"`
	Uppercase       bool   `yaml:"uppercase"`
	Verbose         bool   `yaml:"verbose"`
	Format          string `yaml:"format"`
	Index           bool   `yaml:"index"`
	Workers         int    `yaml:"workers"`
	FailurePolicy   string `yaml:"failure_policy"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Gap:           DefaultGap,
		Ambiguous:     DefaultAmbiguous,
		Suffix:        DefaultSuffix,
		Format:        DefaultFormat,
		Workers:       1,
		FailurePolicy: string(stats.FailFast),
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &sequence.InvalidPathError{Path: path, Reason: err.Error()}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every setting and returns the first problem found.
func (c Config) Validate() error {
	if _, err := c.Alphabet(); err != nil {
		return err
	}
	if !output.Supported(c.Format) {
		return &sequence.InvalidInputError{
			Param:  "format",
			Reason: fmt.Sprintf("unknown output format %q (want one of %v)", c.Format, output.Formats()),
		}
	}
	if c.Workers < 0 {
		return &sequence.InvalidInputError{Param: "workers", Reason: fmt.Sprintf("must not be negative, got %d", c.Workers)}
	}
	if _, err := stats.ParseFailurePolicy(c.FailurePolicy); err != nil {
		return err
	}
	return nil
}

// Alphabet returns the gap/ambiguous alphabet described by c.
func (c Config) Alphabet() (sequence.Alphabet, error) {
	return sequence.NewAlphabet(c.Gap, c.Ambiguous)
}

// Policy returns the aggregator failure policy.
func (c Config) Policy() stats.FailurePolicy {
	p, err := stats.ParseFailurePolicy(c.FailurePolicy)
	if err != nil {
		return stats.FailFast
	}
	return p
}

// OutputOptions returns the table rendering options.
func (c Config) OutputOptions() output.Options {
	return output.Options{Index: c.Index}
}

// Marshal renders c as YAML, suitable for a config file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
