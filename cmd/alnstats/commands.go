package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aria-lang/alnstats-go/internal/config"
	"github.com/aria-lang/alnstats-go/internal/reportstore"
	"github.com/aria-lang/alnstats-go/internal/stats"
	"github.com/aria-lang/alnstats-go/pkg/alnstats"
)

// Store directories. dir saves only when given one; report defaults to
// the working directory's store.
var (
	dirStore    string
	reportStore string
)

var dirCmd = &cobra.Command{
	Use:   "dir <directory>",
	Short: "Report every alignment file in a directory",
	Long: `Reads every file in the directory whose name ends in the suffix and
writes one row per pair of sequences, files in directory order and pairs
in record order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := alnstats.StatsForDirectory(args[0], cfg, logger)
		if err != nil {
			return err
		}
		logger.Info("directory processed",
			"dir", args[0], "files", len(report.Files), "rows", report.Table.Len(), "failed", len(report.Failures))

		if dirStore != "" {
			id, err := saveReport(dirStore, report)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "report %s\n", id)
		}
		for _, f := range report.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped %v\n", f)
		}

		return writeTable(report.Table)
	},
}

var fileCmd = &cobra.Command{
	Use:   "file <alignment>",
	Short: "Report a single alignment file, - for stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := alnstats.StatsForFile(args[0], cfg, logger)
		if err != nil {
			return err
		}
		return writeTable(table)
	},
}

var pairCmd = &cobra.Command{
	Use:   "pair <seq1> <seq2>",
	Short: "Report two aligned sequences",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id1, _ := cmd.Flags().GetString("id1")
		id2, _ := cmd.Flags().GetString("id2")

		alpha, err := cfg.Alphabet()
		if err != nil {
			return err
		}
		s1, s2 := args[0], args[1]
		if cfg.Uppercase {
			s1, s2 = strings.ToUpper(s1), strings.ToUpper(s2)
		}

		row, err := alnstats.PairStats(alnstats.Sequence{ID: id1, Bases: s1}, alnstats.Sequence{ID: id2, Bases: s2}, alpha)
		if err != nil {
			return err
		}
		row.Alignment = "-"

		table := stats.NewTable()
		table.Append(row)
		return writeTable(table)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show stored directory reports",
}

var reportShowCmd = &cobra.Command{
	Use:   "show <id|latest>",
	Short: "Print a stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(reportStore)
		if err != nil {
			return err
		}
		defer store.Close()

		var rec *reportstore.Record
		if args[0] == "latest" {
			rec, err = store.Latest()
		} else {
			rec, err = store.Get(args[0])
		}
		if err != nil {
			return fmt.Errorf("report %s: %w", args[0], err)
		}
		logger.Debug("report loaded", "id", rec.ID, "dir", rec.Dir, "created", rec.CreatedAt)
		return writeTable(rec.Table)
	},
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored report ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(reportStore)
		if err != nil {
			return err
		}
		defer store.Close()

		ids, err := store.List()
		if err != nil {
			return err
		}
		for _, id := range ids {
			rec, err := store.Get(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n",
				id, rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"), rec.Dir, rec.Table.Len())
		}
		return nil
	},
}

func init() {
	dirCmd.Flags().StringP("suffix", "s", config.DefaultSuffix, "alignment file name suffix")
	dirCmd.Flags().String("policy", string(stats.FailFast), "on a failing file: fail-fast or collect")
	dirCmd.Flags().StringVar(&dirStore, "store", "", "save the report in the store at this directory")

	pairCmd.Flags().String("id1", "seq1", "identifier of the first sequence")
	pairCmd.Flags().String("id2", "seq2", "identifier of the second sequence")

	reportCmd.PersistentFlags().StringVar(&reportStore, "store", ".alnstats-db", "report store directory")
	reportCmd.AddCommand(reportShowCmd, reportListCmd)
}

func openStore(path string) (*reportstore.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("no report store given, use --store")
	}
	return reportstore.Open(path)
}

func saveReport(path string, report *alnstats.Report) (string, error) {
	store, err := openStore(path)
	if err != nil {
		return "", err
	}
	defer store.Close()
	return store.Put(reportstore.NewRecord(report))
}
