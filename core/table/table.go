package table

import "sort"

// Row maps column name to cell value. Columns absent from the row are
// treated as null by all accessors.
type Row map[string]Cell

// Get returns the cell for a column, or a null cell if the row has none.
func (r Row) Get(col string) Cell {
	if c, ok := r[col]; ok {
		return c
	}
	return Null()
}

// Table is the in-memory tabular structure shared by every pipeline stage:
// an ordered column list and a sequence of rows. Row order carries no
// semantic meaning except where a stage sorts explicitly before deduping.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string{}, columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// HasColumn reports whether the column exists.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn registers a column if it is not already present.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Append adds a row, registering any unseen columns in order of first
// appearance.
func (t *Table) Append(row Row) {
	for col := range row {
		if !t.HasColumn(col) {
			t.Columns = append(t.Columns, col)
		}
	}
	t.Rows = append(t.Rows, row)
}

// AppendOrdered adds a row and registers unseen columns in the given order.
// Used by readers that know the source column order (CSV headers, decoded
// record keys) and want deterministic column registration.
func (t *Table) AppendOrdered(cols []string, row Row) {
	for _, col := range cols {
		t.AddColumn(col)
	}
	t.Rows = append(t.Rows, row)
}

// Apply replaces every cell of a column with fn(cell). Missing column is a
// no-op, matching the per-entity cleaning contract where absent source
// columns simply stay null.
func (t *Table) Apply(col string, fn func(Cell) Cell) {
	if !t.HasColumn(col) {
		return
	}
	for _, row := range t.Rows {
		row[col] = fn(row.Get(col))
	}
}

// Rename changes a column name, preserving its position. Cells keyed under
// the old name are re-keyed. No-op if the column does not exist.
func (t *Table) Rename(old, new string) {
	for i, c := range t.Columns {
		if c == old {
			t.Columns[i] = new
			for _, row := range t.Rows {
				if cell, ok := row[old]; ok {
					delete(row, old)
					row[new] = cell
				}
			}
			return
		}
	}
}

// Select returns a new table holding only the given columns, in the given
// order. Columns missing from the source become all-null columns, so a
// curated projection never fails on a sparse source.
func (t *Table) Select(cols ...string) *Table {
	out := New(cols...)
	for _, row := range t.Rows {
		nr := make(Row, len(cols))
		for _, col := range cols {
			nr[col] = row.Get(col)
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// SortStable sorts rows with a stable sort using the given less function.
func (t *Table) SortStable(less func(a, b Row) bool) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return less(t.Rows[i], t.Rows[j])
	})
}

// DedupeBy keeps the first row per distinct key and drops the rest. The key
// is the trimmed textual rendering of the key columns; null cells key as the
// empty string, so all null-keyed rows collapse to one. This is a precedence
// rule: losing rows are discarded whole, never merged field by field.
func (t *Table) DedupeBy(keyCols ...string) {
	seen := make(map[string]struct{}, len(t.Rows))
	out := t.Rows[:0]
	for _, row := range t.Rows {
		key := ""
		for _, col := range keyCols {
			key += row.Get(col).TrimmedString() + "\x1f"
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	t.Rows = out
}

// Concat unions multiple tables into one. Columns are the union of all
// source columns in order of first appearance; rows missing a column get
// null for it. Source schemas do not need to match.
func Concat(tables ...*Table) *Table {
	out := New()
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, col := range t.Columns {
			out.AddColumn(col)
		}
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}
