package curate

import "shopzada-etl/core/table"

// lineItemNumericColumns are cast to floating point when present.
var lineItemNumericColumns = []string{"price", "item_price", "amount", "quantity"}

// BuildLineItems builds cur_fact_line_items from the union of all line-item
// staging tables (price and product slices). When a line_item_id column is
// present it becomes the enforced natural key; otherwise the table is
// unkeyed and rows pass through.
func (s *Service) BuildLineItems() (*table.Table, error) {
	li, ok := s.readStagingPrefix("stg_line_item_data")
	if !ok {
		return table.New("line_item_id", "order_id", "product_id"), nil
	}

	li.Apply("order_id", trimKey)
	li.Apply("product_id", trimKey)
	for _, col := range lineItemNumericColumns {
		li.Apply(col, parseNumeric)
	}

	if li.HasColumn("line_item_id") {
		li.Apply("line_item_id", trimKey)
		sortByKeyAsc(li, "order_id")
		li.DedupeBy("line_item_id")
	}
	return li, nil
}
