package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"shopzada-etl/core/table"
	"shopzada-etl/core/utils"

	"go.uber.org/zap"
)

// LoadJSON converts raw JSON file bytes into a table.
//
// Line-delimited parsing is attempted first: if every non-blank line is a
// JSON object, each line becomes one row. Note the degenerate case: a whole
// document written on a single line parses as one "record" here and never
// reaches the shape rules below. That matches the fast-path-first contract
// and is covered by an explicit test.
//
// Otherwise the payload is decoded as one value and handed to DecodeValue.
func LoadJSON(data []byte, log *zap.Logger) (*table.Table, error) {
	if t, ok := decodeLines(data); ok {
		return t, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return DecodeValue(v, log), nil
}

// decodeLines tries to interpret the payload as one JSON object per line.
func decodeLines(data []byte) (*table.Table, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	var records []map[string]any
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, false
		}
		records = append(records, rec)
	}
	if scanner.Err() != nil || len(records) == 0 {
		return nil, false
	}

	t := table.New()
	for _, rec := range records {
		appendRecord(t, rec)
	}
	return t, true
}

// DecodeValue builds a table from an arbitrarily-shaped decoded payload.
// Shapes are tried in strict precedence order:
//
//  1. A mapping whose every value is itself a mapping is treated as
//     column-oriented storage: outer keys are column names, inner keys are
//     row identities. One row is produced per member of the union of inner
//     keys, so columns with non-identical inner-key sets lose no rows.
//  2. Any other mapping is a single record: one row, keys as columns.
//  3. A sequence yields one row per element; keys missing from an element
//     are null in its row.
//  4. Anything else is wrapped as a one-row, one-column table. This is a
//     last resort and logged loudly, since it usually signals malformed
//     input.
func DecodeValue(v any, log *zap.Logger) *table.Table {
	switch val := v.(type) {
	case map[any]any:
		// Object decoders may yield non-string keys; fold them to text.
		conv := make(map[string]any, len(val))
		for k, iv := range val {
			conv[utils.ToString(k)] = iv
		}
		return DecodeValue(conv, log)
	case map[string]any:
		if inner, ok := asColumnOriented(val); ok {
			return decodeColumnOriented(inner)
		}
		t := table.New()
		appendRecord(t, val)
		return t
	case []any:
		return decodeSequence(val)
	default:
		log.Warn("payload matched no tabular shape, wrapping as single row",
			zap.String("payload_type", typeName(v)))
		t := table.New("value")
		t.Rows = append(t.Rows, table.Row{"value": table.FromValue(v)})
		return t
	}
}

// asColumnOriented reports whether the mapping is dict-of-dicts: non-empty
// and every value itself a mapping. Inner maps with non-string keys (as
// produced by some object decoders) are converted to string-keyed maps.
func asColumnOriented(m map[string]any) (map[string]map[string]any, bool) {
	if len(m) == 0 {
		return nil, false
	}
	out := make(map[string]map[string]any, len(m))
	for col, v := range m {
		switch inner := v.(type) {
		case map[string]any:
			out[col] = inner
		case map[any]any:
			conv := make(map[string]any, len(inner))
			for k, iv := range inner {
				conv[utils.ToString(k)] = iv
			}
			out[col] = conv
		default:
			return nil, false
		}
	}
	return out, true
}

// decodeColumnOriented reconstructs a row-per-original-index table from
// column-oriented storage. The row identities are the union of all inner
// keys across all columns; missing entries are null cells.
func decodeColumnOriented(cols map[string]map[string]any) *table.Table {
	colNames := make([]string, 0, len(cols))
	for name := range cols {
		colNames = append(colNames, name)
	}
	sort.Strings(colNames)

	keySet := make(map[string]struct{})
	for _, inner := range cols {
		for k := range inner {
			keySet[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sortRowKeys(keys)

	t := table.New(colNames...)
	for _, key := range keys {
		row := make(table.Row, len(colNames))
		for _, col := range colNames {
			if v, ok := cols[col][key]; ok {
				row[col] = table.FromValue(v)
			} else {
				row[col] = table.Null()
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// sortRowKeys orders row identities numerically when every key is a
// numeral, lexically otherwise.
func sortRowKeys(keys []string) {
	numeric := true
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			numeric = false
			break
		}
	}
	if numeric {
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		})
		return
	}
	sort.Strings(keys)
}

func decodeSequence(seq []any) *table.Table {
	t := table.New()
	for _, el := range seq {
		switch rec := el.(type) {
		case map[string]any:
			appendRecord(t, rec)
		case map[any]any:
			conv := make(map[string]any, len(rec))
			for k, v := range rec {
				conv[utils.ToString(k)] = v
			}
			appendRecord(t, conv)
		default:
			t.AppendOrdered([]string{"value"}, table.Row{"value": table.FromValue(el)})
		}
	}
	return t
}

// appendRecord adds a record map as one row, registering its keys as
// columns in sorted order for determinism.
func appendRecord(t *table.Table, rec map[string]any) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	row := make(table.Row, len(rec))
	for _, k := range keys {
		row[k] = table.FromValue(rec[k])
	}
	t.AppendOrdered(keys, row)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return "other"
	}
}
