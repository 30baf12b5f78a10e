package curate

import (
	"time"

	"shopzada-etl/core/table"
)

// userColumns is the curated projection for cur_dim_users.
var userColumns = []string{
	"user_id", "name", "creation_date", "birthdate", "gender", "user_type",
	"street", "city", "state", "country", "device_address",
}

// geoTextColumns are the free-text user fields that get unicode repair and
// geography correction.
var geoTextColumns = []string{"name", "street", "city", "state", "country"}

// BuildUsers builds cur_dim_users from the union of all user staging
// snapshots (stg_user_data*). Duplicate user_ids are resolved by
// creation_date recency: the newest full row wins, losing rows are
// discarded whole.
func (s *Service) BuildUsers() (*table.Table, error) {
	t, ok := s.readStagingPrefix("stg_user_data")
	if !ok {
		return table.New(userColumns...), nil
	}

	t.Apply("user_id", trimKey)
	for _, col := range geoTextColumns {
		t.Apply(col, cleanText)
		t.Apply(col, s.geo.Apply)
	}
	t.Apply("creation_date", parseTimestamp)
	now := time.Now()
	t.Apply("birthdate", func(c table.Cell) table.Cell {
		return cleanBirthdate(c, now)
	})
	for _, col := range []string{"device_address", "user_type", "gender"} {
		t.Apply(col, lowerText)
	}

	sortByRecencyDesc(t, "creation_date")
	t.DedupeBy("user_id")
	return t.Select(userColumns...), nil
}
