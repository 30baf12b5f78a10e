package table

import "encoding/json"

// Sanitize re-encodes columns containing composite cells into a textual JSON
// serialization so every stored cell is scalar. The decision is column-wide:
// if any non-null cell of a column is composite, every non-null cell of that
// column is JSON-encoded; otherwise the column is left untouched. This keeps
// each column single-typed. Running Sanitize on an already-sanitized table is
// a no-op, since an encoded column no longer holds composite cells.
func (t *Table) Sanitize() {
	for _, col := range t.Columns {
		if !t.columnHasComposite(col) {
			continue
		}
		for _, row := range t.Rows {
			cell := row.Get(col)
			if cell.IsNull() {
				continue
			}
			b, err := json.Marshal(cell.Value)
			if err != nil {
				// Unmarshalable cell values do not occur for decoded
				// payloads; fall back to the textual rendering.
				row[col] = Scalar(cell.String())
				continue
			}
			row[col] = Scalar(string(b))
		}
	}
}

func (t *Table) columnHasComposite(col string) bool {
	for _, row := range t.Rows {
		if row.Get(col).Kind == KindComposite {
			return true
		}
	}
	return false
}
