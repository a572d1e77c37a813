package output

import (
	"encoding/json"
	"io"

	"github.com/aria-lang/alnstats-go/internal/stats"
)

func init() {
	Register("json", writeJSON)
}

type indexedRow struct {
	Index int `json:"row"`
	stats.Row
}

type jsonTable struct {
	Columns []string      `json:"columns"`
	Rows    []interface{} `json:"rows"`
}

func writeJSON(w io.Writer, t *stats.Table, opts Options) error {
	out := jsonTable{Columns: stats.Columns, Rows: make([]interface{}, 0, t.Len())}
	if opts.Index {
		out.Columns = append([]string{"row"}, stats.Columns...)
	}
	for i, r := range t.Rows {
		if opts.Index {
			out.Rows = append(out.Rows, indexedRow{Index: t.RowID(i), Row: r})
			continue
		}
		out.Rows = append(out.Rows, r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
