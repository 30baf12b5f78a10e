package curate

import "shopzada-etl/core/table"

// BuildMerchants builds cur_dim_merchants from stg_merchant_data. All
// normalized merchant columns are kept; text fields get unicode repair.
func (s *Service) BuildMerchants() (*table.Table, error) {
	t, ok := s.readStaging("stg_merchant_data")
	if !ok {
		return table.New("merchant_id"), nil
	}

	t.Apply("merchant_id", trimKey)
	for _, col := range t.Columns {
		if col == "merchant_id" {
			continue
		}
		t.Apply(col, cleanTextPreservingType)
	}

	t.DedupeBy("merchant_id")
	return t, nil
}
