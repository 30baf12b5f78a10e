package curate

import (
	"time"

	"shopzada-etl/core/table"
)

// orderColumns is the curated projection for cur_fact_orders.
var orderColumns = []string{
	"order_id", "user_id", "transaction_date", "transaction_timestamp", "estimated_arrival_days",
}

// BuildOrders builds cur_fact_orders from the union of all time-sliced
// order staging tables (stg_order_data*). Duplicate order_ids resolve to
// the row with the latest transaction timestamp.
func (s *Service) BuildOrders() (*table.Table, error) {
	orders, ok := s.readStagingPrefix("stg_order_data")
	if !ok {
		return table.New(orderColumns...), nil
	}

	orders.Apply("order_id", trimKey)
	orders.Apply("user_id", trimKey)

	if orders.HasColumn("transaction_date") {
		orders.AddColumn("transaction_ts")
		orders.AddColumn("transaction_date_clean")
		for _, row := range orders.Rows {
			ts := parseTimestamp(row.Get("transaction_date"))
			row["transaction_ts"] = ts
			row["transaction_date_clean"] = truncateToDate(ts)
		}
	}
	if orders.HasColumn("estimated_arrival") {
		orders.AddColumn("estimated_arrival_days")
		for _, row := range orders.Rows {
			row["estimated_arrival_days"] = extractInt(row.Get("estimated_arrival"))
		}
	}

	sortByRecencyDesc(orders, "transaction_ts")
	orders.DedupeBy("order_id")

	cur := orders.Select("order_id", "user_id", "transaction_date_clean", "transaction_ts", "estimated_arrival_days")
	cur.Rename("transaction_date_clean", "transaction_date")
	cur.Rename("transaction_ts", "transaction_timestamp")
	return cur, nil
}

func truncateToDate(ts table.Cell) table.Cell {
	if ts.IsNull() {
		return table.Null()
	}
	t, ok := ts.Value.(time.Time)
	if !ok {
		return table.Null()
	}
	return table.Scalar(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}
