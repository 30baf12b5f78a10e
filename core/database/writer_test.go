package database

import (
	"testing"
	"time"

	"shopzada-etl/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)
	require.NotNil(t, db)
	return db
}

func TestReplaceAndReadTable(t *testing.T) {
	db := testDB(t)

	src := table.New("user_id", "age", "score", "joined")
	joined := time.Date(2023, 4, 1, 10, 30, 0, 0, time.UTC)
	src.Rows = append(src.Rows,
		table.Row{
			"user_id": table.Scalar("U1"),
			"age":     table.Scalar(int64(30)),
			"score":   table.Scalar(4.5),
			"joined":  table.Scalar(joined),
		},
		table.Row{
			"user_id": table.Scalar("U2"),
			"age":     table.Null(),
			"score":   table.Scalar(3.0),
			"joined":  table.Null(),
		},
	)

	require.NoError(t, Replace(db, "stg_test", src))

	got, err := ReadTable(db, "stg_test")
	require.NoError(t, err)

	assert.Equal(t, []string{"user_id", "age", "score", "joined"}, got.Columns)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "U1", got.Rows[0].Get("user_id").String())
	assert.True(t, got.Rows[1].Get("age").IsNull())
	assert.True(t, got.Rows[1].Get("joined").IsNull())

	t.Run("Replace Drops Previous Content", func(t *testing.T) {
		next := table.New("user_id")
		next.Rows = append(next.Rows, table.Row{"user_id": table.Scalar("U9")})

		require.NoError(t, Replace(db, "stg_test", next))

		got, err := ReadTable(db, "stg_test")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Len())
		assert.Equal(t, "U9", got.Rows[0].Get("user_id").String())
	})
}

func TestReplaceZeroColumnTable(t *testing.T) {
	db := testDB(t)

	require.NoError(t, Replace(db, "stg_empty", table.New()))
	assert.True(t, HasTable(db, "stg_empty"))

	t.Run("With Rows", func(t *testing.T) {
		// An empty JSON document lands as one row with no columns; the
		// fallback table is created and the valueless rows are dropped.
		src := table.New()
		src.Rows = append(src.Rows, table.Row{})

		require.NoError(t, Replace(db, "stg_empty_rows", src))
		assert.True(t, HasTable(db, "stg_empty_rows"))

		got, err := ReadTable(db, "stg_empty_rows")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Len())
	})
}

func TestReplaceManyRows(t *testing.T) {
	db := testDB(t)

	// Exceeds one insert batch.
	src := table.New("n")
	for i := 0; i < 1203; i++ {
		src.Rows = append(src.Rows, table.Row{"n": table.Scalar(int64(i))})
	}

	require.NoError(t, Replace(db, "stg_many", src))

	got, err := ReadTable(db, "stg_many")
	require.NoError(t, err)
	assert.Equal(t, 1203, got.Len())
}

func TestListTables(t *testing.T) {
	db := testDB(t)

	for _, name := range []string{"stg_b", "stg_a", "cur_x"} {
		tbl := table.New("v")
		tbl.Rows = append(tbl.Rows, table.Row{"v": table.Scalar("1")})
		require.NoError(t, Replace(db, name, tbl))
	}

	names, err := ListTables(db, "stg_")
	require.NoError(t, err)
	assert.Equal(t, []string{"stg_a", "stg_b"}, names)
}

func TestInferColumnType(t *testing.T) {
	tbl := table.New("i", "f", "s", "b", "ts", "mixed", "empty")
	tbl.Rows = append(tbl.Rows,
		table.Row{
			"i":     table.Scalar(int64(1)),
			"f":     table.Scalar(1.5),
			"s":     table.Scalar("x"),
			"b":     table.Scalar(true),
			"ts":    table.Scalar(time.Now()),
			"mixed": table.Scalar(int64(1)),
			"empty": table.Null(),
		},
		table.Row{
			"i":     table.Scalar(int64(2)),
			"f":     table.Scalar(2.0),
			"s":     table.Scalar("y"),
			"b":     table.Scalar(false),
			"ts":    table.Scalar(time.Now()),
			"mixed": table.Scalar("oops"),
			"empty": table.Null(),
		},
	)

	assert.Equal(t, "BIGINT", inferColumnType(tbl, "i"))
	assert.Equal(t, "DOUBLE PRECISION", inferColumnType(tbl, "f"))
	assert.Equal(t, "TEXT", inferColumnType(tbl, "s"))
	assert.Equal(t, "BOOLEAN", inferColumnType(tbl, "b"))
	assert.Equal(t, "TIMESTAMP", inferColumnType(tbl, "ts"))
	assert.Equal(t, "TEXT", inferColumnType(tbl, "mixed"))
	assert.Equal(t, "TEXT", inferColumnType(tbl, "empty"))
}
