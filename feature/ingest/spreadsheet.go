package ingest

import (
	"bytes"
	"fmt"

	"shopzada-etl/core/table"

	"github.com/xuri/excelize/v2"
)

// LoadSpreadsheet reads the first sheet of an Excel workbook. The first row
// is the header; empty cells become null.
func LoadSpreadsheet(data []byte) (*table.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return table.New(), nil
	}

	header := rows[0]
	t := table.New(header...)
	for _, rec := range rows[1:] {
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
