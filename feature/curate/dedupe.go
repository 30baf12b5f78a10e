package curate

import (
	"time"

	"shopzada-etl/core/table"
)

// sortByRecencyDesc stably orders rows so the most recent timestamp in the
// given column comes first; null timestamps sort last. When the column is
// absent the input order is the precedence order.
func sortByRecencyDesc(t *table.Table, col string) {
	if !t.HasColumn(col) {
		return
	}
	t.SortStable(func(a, b table.Row) bool {
		ta, aok := a.Get(col).Value.(time.Time)
		tb, bok := b.Get(col).Value.(time.Time)
		if aok && bok {
			return ta.After(tb)
		}
		return aok && !bok
	})
}

// sortByKeyAsc stably orders rows by the textual rendering of a column.
func sortByKeyAsc(t *table.Table, col string) {
	if !t.HasColumn(col) {
		return
	}
	t.SortStable(func(a, b table.Row) bool {
		return a.Get(col).TrimmedString() < b.Get(col).TrimmedString()
	})
}
