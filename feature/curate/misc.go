package curate

import (
	"strings"

	"shopzada-etl/core/table"
)

// creditCardColumns is the curated projection for the card summary; the
// raw card number never leaves this builder unmasked.
var creditCardColumns = []string{"user_id", "card_masked", "card_type", "expiry"}

// BuildOrderDelays builds cur_order_delays from stg_order_delays. The
// delay value is pulled from the first column whose name mentions delay or
// days, since the raw feed has not kept a stable header for it.
func (s *Service) BuildOrderDelays() (*table.Table, error) {
	t, ok := s.readStaging("stg_order_delays")
	if !ok {
		return table.New("order_id", "delay_days"), nil
	}

	t.Apply("order_id", trimKey)
	for _, col := range t.Columns {
		if strings.Contains(col, "delay") || strings.Contains(col, "days") {
			t.AddColumn("delay_days")
			for _, row := range t.Rows {
				row["delay_days"] = extractInt(row.Get(col))
			}
			break
		}
	}

	t.DedupeBy("order_id")
	return t, nil
}

// BuildCampaigns builds cur_transactional_campaign_data from
// stg_transactional_campaign_data, keyed by order_id.
func (s *Service) BuildCampaigns() (*table.Table, error) {
	t, ok := s.readStaging("stg_transactional_campaign_data")
	if !ok {
		return table.New("order_id"), nil
	}

	t.Apply("order_id", trimKey)
	t.DedupeBy("order_id")
	return t, nil
}

// BuildCreditCardSummary builds cur_user_credit_card_summary from
// stg_user_credit_card, masking card numbers down to their last four
// digits.
func (s *Service) BuildCreditCardSummary() (*table.Table, error) {
	t, ok := s.readStaging("stg_user_credit_card")
	if !ok {
		return table.New(creditCardColumns...), nil
	}

	t.Apply("user_id", trimKey)
	if t.HasColumn("card_number") {
		t.AddColumn("card_masked")
		for _, row := range t.Rows {
			row["card_masked"] = maskCard(row.Get("card_number"))
		}
	}

	t.DedupeBy("user_id")
	return t.Select(creditCardColumns...), nil
}
