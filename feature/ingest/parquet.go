package ingest

import (
	"encoding/json"
	"fmt"

	"shopzada-etl/core/table"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/reader"
	"go.uber.org/zap"
)

// LoadParquet reads a columnar snapshot. The reader derives the schema from
// the file footer, so no Go struct for the snapshot needs to exist ahead of
// time; rows are round-tripped through JSON into generic records and run
// through the same shape rules as any other decoded payload.
func LoadParquet(data []byte, log *zap.Logger) (*table.Table, error) {
	fr := buffer.NewBufferFileFromBytes(data)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet snapshot: %w", err)
	}
	defer pr.ReadStop()

	num := int(pr.GetNumRows())
	raw, err := pr.ReadByNumber(num)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet rows: %w", err)
	}

	// The reader yields reflected structs; the JSON round trip flattens
	// them into generic records.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert parquet rows: %w", err)
	}
	var rows []any
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("failed to convert parquet rows: %w", err)
	}
	return DecodeValue(rows, log), nil
}
