package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppend(t *testing.T) {
	tbl := New()
	tbl.Append(Row{"a": Scalar("1")})
	tbl.Append(Row{"a": Scalar("2"), "b": Scalar("x")})

	assert.Equal(t, 2, tbl.Len())
	assert.True(t, tbl.HasColumn("a"))
	assert.True(t, tbl.HasColumn("b"))
	// First row never got b; it reads as null.
	assert.True(t, tbl.Rows[0].Get("b").IsNull())
}

func TestSelect(t *testing.T) {
	t.Run("Reorders And Projects", func(t *testing.T) {
		tbl := New("a", "b", "c")
		tbl.Rows = append(tbl.Rows, Row{"a": Scalar("1"), "b": Scalar("2"), "c": Scalar("3")})

		out := tbl.Select("c", "a")
		assert.Equal(t, []string{"c", "a"}, out.Columns)
		assert.Equal(t, "3", out.Rows[0].Get("c").String())
		assert.Equal(t, "1", out.Rows[0].Get("a").String())
	})

	t.Run("Missing Column Becomes Null", func(t *testing.T) {
		tbl := New("a")
		tbl.Rows = append(tbl.Rows, Row{"a": Scalar("1")})

		out := tbl.Select("a", "ghost")
		assert.True(t, out.HasColumn("ghost"))
		assert.True(t, out.Rows[0].Get("ghost").IsNull())
	})
}

func TestRename(t *testing.T) {
	tbl := New("old", "other")
	tbl.Rows = append(tbl.Rows, Row{"old": Scalar("v"), "other": Scalar("w")})

	tbl.Rename("old", "new")
	assert.Equal(t, []string{"new", "other"}, tbl.Columns)
	assert.Equal(t, "v", tbl.Rows[0].Get("new").String())
	assert.True(t, tbl.Rows[0].Get("old").IsNull())

	// Renaming a missing column is a no-op.
	tbl.Rename("ghost", "x")
	assert.Equal(t, []string{"new", "other"}, tbl.Columns)
}

func TestDedupeBy(t *testing.T) {
	t.Run("First Occurrence Wins", func(t *testing.T) {
		tbl := New("id", "v")
		tbl.Rows = append(tbl.Rows,
			Row{"id": Scalar("A"), "v": Scalar("first")},
			Row{"id": Scalar("B"), "v": Scalar("only")},
			Row{"id": Scalar("A"), "v": Scalar("second")},
		)

		tbl.DedupeBy("id")
		assert.Equal(t, 2, tbl.Len())
		assert.Equal(t, "first", tbl.Rows[0].Get("v").String())
	})

	t.Run("Keys Compare Trimmed", func(t *testing.T) {
		tbl := New("id")
		tbl.Rows = append(tbl.Rows,
			Row{"id": Scalar(" A ")},
			Row{"id": Scalar("A")},
		)
		tbl.DedupeBy("id")
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("Null Keys Collapse", func(t *testing.T) {
		tbl := New("id")
		tbl.Rows = append(tbl.Rows,
			Row{"id": Null()},
			Row{"id": Null()},
		)
		tbl.DedupeBy("id")
		assert.Equal(t, 1, tbl.Len())
	})
}

func TestConcat(t *testing.T) {
	a := New("x", "y")
	a.Rows = append(a.Rows, Row{"x": Scalar("1"), "y": Scalar("2")})
	b := New("y", "z")
	b.Rows = append(b.Rows, Row{"y": Scalar("3"), "z": Scalar("4")})

	out := Concat(a, nil, b)
	assert.Equal(t, []string{"x", "y", "z"}, out.Columns)
	assert.Equal(t, 2, out.Len())
	// Rows keep only their own cells; the union columns read null elsewhere.
	assert.True(t, out.Rows[0].Get("z").IsNull())
	assert.True(t, out.Rows[1].Get("x").IsNull())
}

func TestApply(t *testing.T) {
	tbl := New("a")
	tbl.Rows = append(tbl.Rows, Row{"a": Scalar("v")})

	tbl.Apply("a", func(c Cell) Cell { return Scalar(c.String() + "!") })
	assert.Equal(t, "v!", tbl.Rows[0].Get("a").String())

	// Missing column is a no-op, not a panic.
	tbl.Apply("ghost", func(c Cell) Cell { return Scalar("boom") })
	assert.False(t, tbl.HasColumn("ghost"))
}

func TestFromValue(t *testing.T) {
	assert.Equal(t, KindNull, FromValue(nil).Kind)
	assert.Equal(t, KindScalar, FromValue("x").Kind)
	assert.Equal(t, KindScalar, FromValue(3.14).Kind)
	assert.Equal(t, KindComposite, FromValue(map[string]any{"k": 1}).Kind)
	assert.Equal(t, KindComposite, FromValue([]any{1, 2}).Kind)
}
