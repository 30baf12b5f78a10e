package profile

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"shopzada-etl/core/database"
	"shopzada-etl/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	return db
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestServiceRun(t *testing.T) {
	db := testDB(t)

	users := table.New("user_id", "name", "country")
	users.Rows = append(users.Rows,
		table.Row{"user_id": table.Scalar("U1"), "name": table.Scalar("Ann"), "country": table.Scalar("US")},
		table.Row{"user_id": table.Scalar("U2"), "name": table.Null(), "country": table.Scalar("US")},
		table.Row{"user_id": table.Scalar("U3"), "name": table.Scalar("Cid"), "country": table.Scalar("CA")},
	)
	require.NoError(t, database.Replace(db, "stg_user_data", users))

	orders := table.New("order_id", "user_id")
	orders.Rows = append(orders.Rows,
		table.Row{"order_id": table.Scalar("O1"), "user_id": table.Scalar("U1")},
		table.Row{"order_id": table.Scalar("O2"), "user_id": table.Scalar("U9")},
	)
	require.NoError(t, database.Replace(db, "stg_order_data", orders))

	reportDir := t.TempDir()
	s := NewService(db, zap.NewNop(), reportDir)
	require.NoError(t, s.Run(context.Background()))

	t.Run("Summary", func(t *testing.T) {
		records := readCSV(t, filepath.Join(reportDir, "staging_profile_summary.csv"))
		require.Equal(t, 3, len(records))

		byTable := make(map[string][]string)
		for _, rec := range records[1:] {
			byTable[rec[0]] = rec
		}

		assert.Equal(t, "3", byTable["stg_user_data"][1])
		assert.Equal(t, "user_id", byTable["stg_user_data"][3])
		// The order staging table references one user missing upstream.
		assert.Contains(t, byTable["stg_order_data"][4], "user_id->stg_user_data missing=1")
	})

	t.Run("Column Report", func(t *testing.T) {
		records := readCSV(t, filepath.Join(reportDir, "stg_user_data_columns.csv"))
		require.Equal(t, 4, len(records))

		byCol := make(map[string][]string)
		for _, rec := range records[1:] {
			byCol[rec[0]] = rec
		}

		assert.Equal(t, "0", byCol["user_id"][1])
		assert.Equal(t, "3", byCol["user_id"][2])
		assert.Equal(t, "1", byCol["name"][1])
		assert.Equal(t, "2", byCol["country"][2])
	})

	t.Run("Top Values", func(t *testing.T) {
		records := readCSV(t, filepath.Join(reportDir, "stg_user_data_topvals.csv"))
		require.GreaterOrEqual(t, len(records), 2)

		found := false
		for _, rec := range records[1:] {
			if rec[0] == "country" && rec[1] == "US" {
				assert.Equal(t, "2", rec[2])
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestServiceRunNoStaging(t *testing.T) {
	db := testDB(t)
	reportDir := t.TempDir()

	s := NewService(db, zap.NewNop(), reportDir)
	require.NoError(t, s.Run(context.Background()))

	records := readCSV(t, filepath.Join(reportDir, "staging_profile_summary.csv"))
	assert.Equal(t, 1, len(records))
}
