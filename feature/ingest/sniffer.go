package ingest

import (
	"path/filepath"
	"strings"
)

// Format identifies which structural parser applies to a raw file.
type Format int

const (
	// FormatUnsupported means no parser applies; the file is skipped.
	FormatUnsupported Format = iota
	// FormatDelimited is delimiter-detected tabular text (csv/tsv).
	FormatDelimited
	// FormatJSON is flexible-shape JSON.
	FormatJSON
	// FormatHTML is an HTML document; only the first table is read.
	FormatHTML
	// FormatSpreadsheet is an Excel workbook; only the first sheet is read.
	FormatSpreadsheet
	// FormatParquet is a columnar snapshot.
	FormatParquet
	// FormatObject is a serialized-object payload (msgpack).
	FormatObject
)

// String returns a short name for logging.
func (f Format) String() string {
	switch f {
	case FormatDelimited:
		return "delimited"
	case FormatJSON:
		return "json"
	case FormatHTML:
		return "html"
	case FormatSpreadsheet:
		return "spreadsheet"
	case FormatParquet:
		return "parquet"
	case FormatObject:
		return "object"
	default:
		return "unsupported"
	}
}

// Detect classifies a file by its extension, case-insensitively.
func Detect(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv":
		return FormatDelimited
	case ".json":
		return FormatJSON
	case ".html", ".htm":
		return FormatHTML
	case ".xlsx", ".xls":
		return FormatSpreadsheet
	case ".parquet":
		return FormatParquet
	case ".msgpack", ".mpk":
		return FormatObject
	default:
		return FormatUnsupported
	}
}

// Delimiter picks the field separator for delimited text from the first
// header line: tab if the line contains one, comma otherwise. No further
// content sampling is done.
func Delimiter(firstLine string) rune {
	if strings.ContainsRune(firstLine, '\t') {
		return '\t'
	}
	return ','
}
