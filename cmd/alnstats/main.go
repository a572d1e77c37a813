// Command alnstats computes pairwise statistics for multiple sequence
// alignments.
//
// Usage:
//
//	alnstats [command] [options]
//
// Commands:
//
//	dir         Report every alignment file in a directory
//	file        Report a single alignment file
//	pair        Report two aligned sequences given on the command line
//	report      Show stored directory reports
//	config      Print the effective configuration
//	version     Show version information
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aria-lang/alnstats-go/internal/config"
	"github.com/aria-lang/alnstats-go/internal/output"
	"github.com/aria-lang/alnstats-go/pkg/alnstats"
)

// settings shared by every subcommand, filled by the root command.
var (
	cfgPath string
	outPath string
	cfg     config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "alnstats",
	Short:         "Pairwise statistics for multiple sequence alignments",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}
		logger = newLogger(os.Stderr, cfg.Verbose)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&cfgPath, "config", "c", "", "YAML config file")
	f.StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	f.String("gap", config.DefaultGap, "gap symbol")
	f.String("ambiguous", config.DefaultAmbiguous, "ambiguous base symbol")
	f.String("header-delim", "", "identifier ends at the first occurrence of this string in a header")
	f.BoolP("verbose", "v", false, "log progress to stderr")
	f.StringP("format", "f", config.DefaultFormat, fmt.Sprintf("output format %v", output.Formats()))
	f.Bool("index", false, "prepend a 1-based row column")
	f.Bool("uppercase", false, "uppercase sequences before comparing")
	f.IntP("workers", "j", 1, "pairs computed concurrently per alignment, 0 for all CPUs")

	rootCmd.AddCommand(dirCmd, fileCmd, pairCmd, reportCmd, configCmd, versionCmd)
}

// loadConfig layers defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if cfgPath != "" {
		var err error
		if c, err = config.Load(cfgPath); err != nil {
			return c, err
		}
	}

	f := cmd.Flags()
	if f.Changed("gap") {
		c.Gap, _ = f.GetString("gap")
	}
	if f.Changed("ambiguous") {
		c.Ambiguous, _ = f.GetString("ambiguous")
	}
	if f.Changed("header-delim") {
		c.HeaderDelimiter, _ = f.GetString("header-delim")
	}
	if f.Changed("verbose") {
		c.Verbose, _ = f.GetBool("verbose")
	}
	if f.Changed("format") {
		c.Format, _ = f.GetString("format")
	}
	if f.Changed("index") {
		c.Index, _ = f.GetBool("index")
	}
	if f.Changed("uppercase") {
		c.Uppercase, _ = f.GetBool("uppercase")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}
	if f.Lookup("suffix") != nil && f.Changed("suffix") {
		c.Suffix, _ = f.GetString("suffix")
	}
	if f.Lookup("policy") != nil && f.Changed("policy") {
		c.FailurePolicy, _ = f.GetString("policy")
	}

	return c, c.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openOutput returns stdout for "" and "-", otherwise creates path.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func writeTable(t *alnstats.Table) error {
	w, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if err := alnstats.WriteTable(w, t, cfg); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), alnstats.Info())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if output.IsBrokenPipe(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
