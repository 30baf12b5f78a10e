package curate

import "shopzada-etl/core/table"

// productColumns is the curated projection for cur_dim_products.
var productColumns = []string{"product_id", "product_name", "category", "price"}

// BuildProducts builds cur_dim_products from the master product list.
func (s *Service) BuildProducts() (*table.Table, error) {
	t, ok := s.readStaging("stg_product_list")
	if !ok {
		return table.New(productColumns...), nil
	}

	t.Apply("product_id", trimKey)
	for _, col := range t.Columns {
		if col == "product_id" || col == "price" {
			continue
		}
		t.Apply(col, cleanTextPreservingType)
	}
	t.Apply("price", parseNumeric)

	t.DedupeBy("product_id")
	return t.Select(productColumns...), nil
}
