package precinct

import (
	"fmt"
	"strings"
)

// Row maps column names to raw string cell values. A missing column and an
// empty string are both treated as "no value".
type Row map[string]string

// Key is the composite identity of a precinct record.
type Key struct {
	State    string
	County   string
	Precinct string
}

// KeyOf extracts the identity key from a row, trimming surrounding whitespace.
func KeyOf(r Row) Key {
	return Key{
		State:    strings.TrimSpace(r["state"]),
		County:   strings.TrimSpace(r["county"]),
		Precinct: strings.TrimSpace(r["precinct"]),
	}
}

// Less orders keys ascending by (state, county, precinct).
func (k Key) Less(o Key) bool {
	if k.State != o.State {
		return k.State < o.State
	}
	if k.County != o.County {
		return k.County < o.County
	}
	return k.Precinct < o.Precinct
}

// String renders the key for log and error messages.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.State, k.County, k.Precinct)
}

// Table is a fully materialized tabular dataset: an ordered column list and an
// ordered sequence of rows. Name labels the table's origin (a file path or
// object name) and is used in reports; it carries no semantics.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given name and column order.
func NewTable(name string, columns []string) *Table {
	return &Table{Name: name, Columns: append([]string(nil), columns...)}
}

// HasColumn reports whether the table declares the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of want not declared by the table,
// preserving the order of want.
func (t *Table) MissingColumns(want []string) []string {
	var missing []string
	for _, c := range want {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Label returns the table's name, or a fallback when it is unnamed.
func (t *Table) Label(fallback string) string {
	if t.Name != "" {
		return t.Name
	}
	return fallback
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnValues returns the cell values of one column in row order. Rows
// without the column contribute an empty string.
func (t *Table) ColumnValues(column string) []string {
	values := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		values = append(values, r[column])
	}
	return values
}
