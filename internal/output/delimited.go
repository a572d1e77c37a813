package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/aria-lang/alnstats-go/internal/stats"
)

func init() {
	Register("tsv", delimitedWriter('\t'))
	Register("csv", delimitedWriter(','))
}

func delimitedWriter(comma rune) WriterFunc {
	return func(w io.Writer, t *stats.Table, opts Options) error {
		cw := csv.NewWriter(w)
		cw.Comma = comma

		header := stats.Columns
		if opts.Index {
			header = append([]string{"row"}, stats.Columns...)
		}
		if err := cw.Write(header); err != nil {
			return err
		}

		for i, r := range t.Rows {
			rec := r.Values()
			if opts.Index {
				rec = append([]string{strconv.Itoa(t.RowID(i))}, rec...)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}

		cw.Flush()
		return cw.Error()
	}
}
