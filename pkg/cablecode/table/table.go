// Package table is the tabular dataset exchanged with the batch processor:
// a header of column names and rows of text cells.
package table

import (
	"fmt"

	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
	"github.com/cognicore/cablecode/pkg/cablecode/textnorm"
)

// Table is a rectangular-by-convention dataset. Rows may be shorter than
// the header; missing cells read as "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given header
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append adds a row
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, append([]string(nil), cells...))
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index finds a column by exact name, then by accent- and case-folded
// name ("Descricao" finds "Descrição").
func (t *Table) Index(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	folded := textnorm.Fold(name)
	for i, c := range t.Columns {
		if textnorm.Fold(c) == folded {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", internalerr.ErrColumnNotFound, name)
}

// Cell returns the value at row r, column c, or "" when the row is short.
func (t *Table) Cell(r, c int) string {
	row := t.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}

// Column returns a copy of every value of the named column
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.Index(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(t.Rows))
	for r := range t.Rows {
		values[r] = t.Cell(r, idx)
	}
	return values, nil
}

// SetColumn writes values into the named column, appending the column
// when it does not exist yet. len(values) must equal Len().
func (t *Table) SetColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("set column %q: %d values for %d rows", name, len(values), len(t.Rows))
	}

	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Columns = append(t.Columns, name)
		idx = len(t.Columns) - 1
	}

	for r, v := range values {
		row := t.Rows[r]
		for len(row) <= idx {
			row = append(row, "")
		}
		row[idx] = v
		t.Rows[r] = row
	}
	return nil
}

// Clone returns a deep copy
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
