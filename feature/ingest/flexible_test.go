package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadJSONLineDelimited(t *testing.T) {
	t.Run("One Object Per Line", func(t *testing.T) {
		data := []byte("{\"a\": 1, \"b\": \"x\"}\n{\"a\": 2}\n\n{\"a\": 3, \"c\": true}\n")
		tbl, err := LoadJSON(data, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, 3, tbl.Len())
		assert.True(t, tbl.HasColumn("a"))
		assert.True(t, tbl.HasColumn("b"))
		assert.True(t, tbl.HasColumn("c"))
		assert.True(t, tbl.Rows[1].Get("b").IsNull())
	})

	t.Run("Single Line Document Is One Record", func(t *testing.T) {
		// A whole document on one line parses as line-delimited with a
		// single record; it never reaches the shape rules.
		data := []byte(`{"a": {"0": 1, "1": 2}}`)
		tbl, err := LoadJSON(data, zap.NewNop())
		require.NoError(t, err)

		assert.Equal(t, 1, tbl.Len())
		assert.Equal(t, []string{"a"}, tbl.Columns)
	})
}

func TestDecodeValueColumnOriented(t *testing.T) {
	t.Run("Union Of Inner Keys", func(t *testing.T) {
		v := map[string]any{
			"b": map[string]any{"0": "x"},
			"a": map[string]any{"0": 1.0, "1": 2.0},
		}
		tbl := DecodeValue(v, zap.NewNop())

		// Columns sorted, one row per member of the inner key union.
		assert.Equal(t, []string{"a", "b"}, tbl.Columns)
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, 1.0, tbl.Rows[0].Get("a").Value)
		assert.Equal(t, "x", tbl.Rows[0].Get("b").Value)
		assert.Equal(t, 2.0, tbl.Rows[1].Get("a").Value)
		assert.True(t, tbl.Rows[1].Get("b").IsNull())
	})

	t.Run("Numeric Keys Sort Numerically", func(t *testing.T) {
		v := map[string]any{
			"n": map[string]any{"0": "a", "2": "c", "10": "k"},
		}
		tbl := DecodeValue(v, zap.NewNop())

		require.Equal(t, 3, tbl.Len())
		assert.Equal(t, "a", tbl.Rows[0].Get("n").Value)
		assert.Equal(t, "c", tbl.Rows[1].Get("n").Value)
		assert.Equal(t, "k", tbl.Rows[2].Get("n").Value)
	})

	t.Run("Mixed Keys Sort Lexically", func(t *testing.T) {
		v := map[string]any{
			"n": map[string]any{"b": "2", "a": "1", "10": "0"},
		}
		tbl := DecodeValue(v, zap.NewNop())

		require.Equal(t, 3, tbl.Len())
		assert.Equal(t, "0", tbl.Rows[0].Get("n").Value)
		assert.Equal(t, "1", tbl.Rows[1].Get("n").Value)
		assert.Equal(t, "2", tbl.Rows[2].Get("n").Value)
	})
}

func TestDecodeValueShapes(t *testing.T) {
	t.Run("Flat Mapping Is One Record", func(t *testing.T) {
		v := map[string]any{"id": "U1", "name": "Ann"}
		tbl := DecodeValue(v, zap.NewNop())

		assert.Equal(t, 1, tbl.Len())
		assert.Equal(t, "U1", tbl.Rows[0].Get("id").Value)
	})

	t.Run("Mixed Mapping Is One Record", func(t *testing.T) {
		// One nested value is not enough; every value must be a mapping.
		v := map[string]any{"id": "U1", "meta": map[string]any{"k": "v"}}
		tbl := DecodeValue(v, zap.NewNop())

		assert.Equal(t, 1, tbl.Len())
		assert.True(t, tbl.HasColumn("id"))
		assert.True(t, tbl.HasColumn("meta"))
	})

	t.Run("Sequence Of Records", func(t *testing.T) {
		v := []any{
			map[string]any{"a": 1.0},
			map[string]any{"a": 2.0, "b": "x"},
		}
		tbl := DecodeValue(v, zap.NewNop())

		assert.Equal(t, 2, tbl.Len())
		assert.True(t, tbl.Rows[0].Get("b").IsNull())
	})

	t.Run("Scalar Wraps As Single Row", func(t *testing.T) {
		tbl := DecodeValue("just a string", zap.NewNop())

		assert.Equal(t, []string{"value"}, tbl.Columns)
		require.Equal(t, 1, tbl.Len())
		assert.Equal(t, "just a string", tbl.Rows[0].Get("value").Value)
	})

	t.Run("NonString Keys Folded", func(t *testing.T) {
		v := map[any]any{1: "a", 2: "b"}
		tbl := DecodeValue(v, zap.NewNop())

		assert.Equal(t, 1, tbl.Len())
		assert.True(t, tbl.HasColumn("1"))
		assert.True(t, tbl.HasColumn("2"))
	})
}
