package curate

import (
	"testing"

	"shopzada-etl/core/database"
	"shopzada-etl/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildOrderDelays(t *testing.T) {
	db := testDB(t)

	delays := table.New("order_id", "delay in days")
	delays.Rows = append(delays.Rows,
		table.Row{"order_id": table.Scalar("O1"), "delay in days": table.Scalar("13days")},
		table.Row{"order_id": table.Scalar("O2"), "delay in days": table.Scalar("none")},
		table.Row{"order_id": table.Scalar("O1"), "delay in days": table.Scalar("99days")},
	)
	// Staged column names are normalized before they reach the builder.
	delays.NormalizeColumns()
	stage(t, db, "stg_order_delays", delays)

	s := NewService(db, nil, zap.NewNop(), 0)
	got, err := s.BuildOrderDelays()
	require.NoError(t, err)

	require.Equal(t, 2, got.Len())
	byID := make(map[string]table.Row)
	for _, row := range got.Rows {
		byID[row.Get("order_id").String()] = row
	}
	assert.Equal(t, int64(13), byID["O1"].Get("delay_days").Value)
	assert.True(t, byID["O2"].Get("delay_days").IsNull())
}

func TestBuildCreditCardSummary(t *testing.T) {
	db := testDB(t)

	cards := table.New("user_id", "card_number", "card_type", "expiry")
	cards.Rows = append(cards.Rows,
		table.Row{
			"user_id":     table.Scalar("U1"),
			"card_number": table.Scalar("4111-1111-1111-2345"),
			"card_type":   table.Scalar("visa"),
			"expiry":      table.Scalar("12/26"),
		},
		table.Row{
			"user_id":     table.Scalar("U2"),
			"card_number": table.Scalar("12"),
			"card_type":   table.Scalar("mastercard"),
			"expiry":      table.Scalar("01/25"),
		},
	)
	stage(t, db, "stg_user_credit_card", cards)

	s := NewService(db, nil, zap.NewNop(), 0)
	got, err := s.BuildCreditCardSummary()
	require.NoError(t, err)

	// The raw card number never appears in the curated projection.
	assert.Equal(t, creditCardColumns, got.Columns)
	assert.False(t, got.HasColumn("card_number"))

	require.Equal(t, 2, got.Len())
	byID := make(map[string]table.Row)
	for _, row := range got.Rows {
		byID[row.Get("user_id").String()] = row
	}
	assert.Equal(t, "**** **** **** 2345", byID["U1"].Get("card_masked").String())
	assert.True(t, byID["U2"].Get("card_masked").IsNull())
}

func TestBuildDimDate(t *testing.T) {
	s := NewService(nil, nil, zap.NewNop(), 2024)
	got, err := s.BuildDimDate()
	require.NoError(t, err)

	assert.Equal(t, dimDateColumns, got.Columns)
	require.NotEmpty(t, got.Rows)

	first := got.Rows[0]
	assert.Equal(t, int64(20240101), first.Get("date_sk").Value)
	assert.Equal(t, int64(1), first.Get("month").Value)
	assert.Equal(t, int64(1), first.Get("quarter").Value)
	// 2024-01-01 was a Monday.
	assert.Equal(t, int64(1), first.Get("day_of_week").Value)
	assert.Equal(t, int64(0), first.Get("is_weekend").Value)

	// 2024-01-06 was a Saturday.
	sat := got.Rows[5]
	assert.Equal(t, int64(6), sat.Get("day_of_week").Value)
	assert.Equal(t, int64(1), sat.Get("is_weekend").Value)
}

func TestBuildDimDateKeysUnique(t *testing.T) {
	s := NewService(nil, nil, zap.NewNop(), 2024)
	got, err := s.BuildDimDate()
	require.NoError(t, err)

	seen := make(map[int64]struct{}, got.Len())
	for _, row := range got.Rows {
		sk := row.Get("date_sk").Value.(int64)
		_, dup := seen[sk]
		assert.False(t, dup, "duplicate date_sk %d", sk)
		seen[sk] = struct{}{}
	}
}

func TestBuildersMissingStaging(t *testing.T) {
	// Unused database handle: builders with missing staging short-circuit.
	db := testDB(t)
	s := NewService(db, nil, zap.NewNop(), 0)

	for name, build := range map[string]func() (*table.Table, error){
		"campaigns": s.BuildCampaigns,
		"delays":    s.BuildOrderDelays,
		"cards":     s.BuildCreditCardSummary,
		"products":  s.BuildProducts,
		"merchants": s.BuildMerchants,
		"lineitems": s.BuildLineItems,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := build()
			require.NoError(t, err)
			assert.True(t, got.Empty())
		})
	}
	assert.False(t, database.HasTable(db, "cur_dim_users"))
}
