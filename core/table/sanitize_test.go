package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Run("Composite Column Fully Encoded", func(t *testing.T) {
		tbl := New("meta", "plain")
		tbl.Rows = append(tbl.Rows,
			Row{"meta": FromValue(map[string]any{"k": "v"}), "plain": Scalar("keep")},
			Row{"meta": Scalar("already text"), "plain": Scalar("keep2")},
			Row{"meta": Null(), "plain": Null()},
		)

		tbl.Sanitize()

		// Every non-null cell of the composite column is now a JSON scalar.
		assert.Equal(t, KindScalar, tbl.Rows[0].Get("meta").Kind)
		assert.Equal(t, `{"k":"v"}`, tbl.Rows[0].Get("meta").String())
		// Scalars in the same column are re-encoded too, keeping the column
		// single-typed.
		assert.Equal(t, `"already text"`, tbl.Rows[1].Get("meta").String())
		assert.True(t, tbl.Rows[2].Get("meta").IsNull())
		// Columns without composites are untouched.
		assert.Equal(t, "keep", tbl.Rows[0].Get("plain").String())
	})

	t.Run("Idempotent", func(t *testing.T) {
		tbl := New("meta")
		tbl.Rows = append(tbl.Rows, Row{"meta": FromValue([]any{1.0, 2.0})})

		tbl.Sanitize()
		first := tbl.Rows[0].Get("meta").String()
		tbl.Sanitize()
		assert.Equal(t, first, tbl.Rows[0].Get("meta").String())
	})
}
