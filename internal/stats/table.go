package stats

import "fmt"

// Table is an ordered list of rows: files in enumeration order, then
// pairs in enumeration order. Row identifiers are 1-based positions.
type Table struct {
	Rows []Row `json:"rows"`
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{Rows: make([]Row, 0)}
}

// Append adds rows to the end of the table.
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// RowID returns the 1-based identifier of the row at index i.
func (t *Table) RowID(i int) int {
	return i + 1
}

// Alignments returns the distinct alignment names in table order.
func (t *Table) Alignments() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, r := range t.Rows {
		if !seen[r.Alignment] {
			seen[r.Alignment] = true
			names = append(names, r.Alignment)
		}
	}
	return names
}

func (t *Table) String() string {
	return fmt.Sprintf("Table { rows: %d, alignments: %d }", t.Len(), len(t.Alignments()))
}
