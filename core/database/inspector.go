package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of an existing table.
type ColumnInfo struct {
	Field string
	Type  string
}

// ListTables returns the names of tables whose name starts with prefix,
// sorted ascending. The query is dialect-specific.
func ListTables(db *gorm.DB, prefix string) ([]string, error) {
	var names []string
	pattern := prefix + "%"

	var err error
	switch db.Dialector.Name() {
	case "sqlite":
		err = db.Raw(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name LIKE ? ORDER BY name",
			pattern).Scan(&names).Error
	case "mysql":
		err = db.Raw(
			"SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name LIKE ? ORDER BY table_name",
			pattern).Scan(&names).Error
	default:
		// postgres
		err = db.Raw(
			"SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' AND table_type = 'BASE TABLE' AND table_name LIKE ? ORDER BY table_name",
			pattern).Scan(&names).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tables with prefix %s: %w", prefix, err)
	}
	return names, nil
}

// GetTableColumns retrieves the column definitions for a given table in
// declaration order.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	switch db.Dialector.Name() {
	case "sqlite":
		// SQLite uses PRAGMA table_info
		type sqliteColumn struct {
			Cid        int
			Name       string
			Type       string
			Notnull    int
			DefaultVal *string
			Pk         int
		}
		var sqliteCols []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info(%s)", Quote(db, tableName))).Scan(&sqliteCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range sqliteCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Name),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	case "mysql":
		type mysqlColumn struct {
			Field string
			Type  string
		}
		var mysqlCols []mysqlColumn
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM %s", Quote(db, tableName))).Scan(&mysqlCols).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range mysqlCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.Field),
				Type:  strings.ToLower(col.Type),
			})
		}
		return columns, nil
	default:
		type pgColumn struct {
			ColumnName string
			DataType   string
		}
		var pgCols []pgColumn
		err := db.Raw(
			"SELECT column_name, data_type FROM information_schema.columns WHERE table_schema = 'public' AND table_name = ? ORDER BY ordinal_position",
			tableName).Scan(&pgCols).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range pgCols {
			columns = append(columns, ColumnInfo{
				Field: strings.ToLower(col.ColumnName),
				Type:  strings.ToLower(col.DataType),
			})
		}
		return columns, nil
	}
}

// HasTable reports whether a table exists.
func HasTable(db *gorm.DB, tableName string) bool {
	return db.Migrator().HasTable(tableName)
}

// Quote wraps an identifier in the dialect's quoting characters.
func Quote(db *gorm.DB, ident string) string {
	if db.Dialector.Name() == "mysql" {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}
