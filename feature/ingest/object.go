package ingest

import (
	"fmt"

	"shopzada-etl/core/table"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// LoadObject decodes a serialized-object payload (msgpack) and runs it
// through the same shape rules as decoded JSON: column-oriented mappings
// are reconstructed row-per-inner-key, sequences become row lists, and
// anything else degrades to a single-row wrap.
func LoadObject(data []byte, log *zap.Logger) (*table.Table, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode serialized object: %w", err)
	}
	return DecodeValue(v, log), nil
}
