package database

import (
	"fmt"
	"strings"
	"time"

	"shopzada-etl/core/table"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// insertBatchSize bounds the number of rows per INSERT statement to stay
// under driver placeholder limits.
const insertBatchSize = 500

// Replace persists a table under the given name with full-replace
// semantics: drop if present, create from the table's inferred column
// types, insert all rows. There is no cross-table transaction; a failure
// here does not roll back tables already written earlier in the run.
func Replace(db *gorm.DB, name string, t *table.Table) error {
	if t == nil {
		return nil
	}

	if HasTable(db, name) {
		if err := db.Migrator().DropTable(name); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
	}

	defs := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		defs = append(defs, fmt.Sprintf("%s %s", Quote(db, col), inferColumnType(t, col)))
	}
	if len(defs) == 0 {
		// Degenerate sources can produce a zero-column table; land a
		// single text column so the staging name still exists.
		defs = append(defs, fmt.Sprintf("%s TEXT", Quote(db, "value")))
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", Quote(db, name), strings.Join(defs, ", "))
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if len(t.Columns) == 0 {
		// Rows without columns carry no values to insert.
		return nil
	}

	var placeholder sq.PlaceholderFormat = sq.Question
	if db.Dialector.Name() == "postgres" {
		placeholder = sq.Dollar
	}

	quoted := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		quoted[i] = Quote(db, col)
	}

	for start := 0; start < len(t.Rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		builder := sq.Insert(Quote(db, name)).
			Columns(quoted...).
			PlaceholderFormat(placeholder)
		for _, row := range t.Rows[start:end] {
			vals := make([]any, len(t.Columns))
			for i, col := range t.Columns {
				vals[i] = driverValue(row.Get(col))
			}
			builder = builder.Values(vals...)
		}
		sqlStr, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", name, err)
		}
		if err := db.Exec(sqlStr, args...).Error; err != nil {
			return fmt.Errorf("failed to insert into %s (%d rows attempted): %w", name, t.Len(), err)
		}
	}
	return nil
}

// inferColumnType picks a storage type from the non-null cells of a column.
// Mixed or textual columns fall back to TEXT.
func inferColumnType(t *table.Table, col string) string {
	allInt, allNum, allTime, allBool := true, true, true, true
	seen := false
	for _, row := range t.Rows {
		cell := row.Get(col)
		if cell.IsNull() {
			continue
		}
		seen = true
		switch cell.Value.(type) {
		case int, int32, int64:
			allTime, allBool = false, false
		case float32, float64:
			allInt, allTime, allBool = false, false, false
		case time.Time:
			allInt, allNum, allBool = false, false, false
		case bool:
			allInt, allNum, allTime = false, false, false
		default:
			return "TEXT"
		}
	}
	if !seen {
		return "TEXT"
	}
	switch {
	case allTime:
		return "TIMESTAMP"
	case allBool:
		return "BOOLEAN"
	case allInt:
		return "BIGINT"
	case allNum:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

// driverValue unwraps a cell for the SQL driver. Composite cells should not
// reach the writer; Sanitize runs first. If one slips through it is stored
// as its textual rendering rather than failing the batch.
func driverValue(c table.Cell) any {
	if c.IsNull() {
		return nil
	}
	if c.Kind == table.KindComposite {
		return c.String()
	}
	return c.Value
}
