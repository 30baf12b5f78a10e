package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"shopzada-etl/core/table"
)

// LoadDelimited parses delimiter-separated text into a table. The separator
// comes from sniffing the first header line (tab vs comma). Ragged rows are
// tolerated: short rows leave trailing columns null, long rows drop the
// overflow. Empty fields become null cells.
func LoadDelimited(data []byte, sep rune) (*table.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sep
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited text: %w", err)
	}
	if len(records) == 0 {
		return table.New(), nil
	}

	header := records[0]
	t := table.New(header...)
	for _, rec := range records[1:] {
		row := make(table.Row, len(header))
		for i, col := range header {
			if i >= len(rec) || rec[i] == "" {
				row[col] = table.Null()
				continue
			}
			row[col] = table.Scalar(rec[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
