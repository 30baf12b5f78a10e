package database

import (
	"fmt"
	"time"

	"shopzada-etl/core/table"

	"gorm.io/gorm"
)

// ReadTable loads an entire table into memory, preserving column order.
// A missing table is returned as (nil, error); callers decide whether that
// is fatal or a warn-and-continue case.
func ReadTable(db *gorm.DB, name string) (*table.Table, error) {
	rows, err := db.Raw(fmt.Sprintf("SELECT * FROM %s", Quote(db, name))).Rows()
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("could not read columns of %s: %w", name, err)
	}

	t := table.New(cols...)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("could not scan row of %s: %w", name, err)
		}
		row := make(table.Row, len(cols))
		for i, col := range cols {
			row[col] = cellFromDriver(values[i])
		}
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed for %s: %w", name, err)
	}
	return t, nil
}

// cellFromDriver converts a driver value into a cell. Byte slices become
// strings so downstream transforms only ever see text for textual columns.
func cellFromDriver(v any) table.Cell {
	switch val := v.(type) {
	case nil:
		return table.Null()
	case []byte:
		return table.Scalar(string(val))
	case time.Time:
		return table.Scalar(val)
	default:
		return table.Scalar(val)
	}
}
