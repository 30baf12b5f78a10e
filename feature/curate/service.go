package curate

import (
	"context"

	"shopzada-etl/core/database"
	"shopzada-etl/core/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service transforms staging tables into the curated star schema. Each
// entity is built independently; a failing entity is logged and the run
// continues with the next one.
type Service struct {
	db        *gorm.DB
	geo       *GeoMap
	log       *zap.Logger
	startYear int
}

// NewService creates a cleaning service. The geo map must already be
// loaded; it is read-only for the lifetime of the service.
func NewService(db *gorm.DB, geo *GeoMap, log *zap.Logger, startYear int) *Service {
	if geo == nil {
		geo = NewGeoMap()
	}
	return &Service{db: db, geo: geo, log: log, startYear: startYear}
}

// Run builds and persists every curated table.
func (s *Service) Run(ctx context.Context) error {
	builders := []struct {
		name  string
		build func() (*table.Table, error)
	}{
		{"dim_date", s.BuildDimDate},
		{"cur_dim_users", s.BuildUsers},
		{"cur_dim_products", s.BuildProducts},
		{"cur_dim_merchants", s.BuildMerchants},
		{"cur_fact_orders", s.BuildOrders},
		{"cur_fact_line_items", s.BuildLineItems},
		{"cur_order_delays", s.BuildOrderDelays},
		{"cur_transactional_campaign_data", s.BuildCampaigns},
		{"cur_user_credit_card_summary", s.BuildCreditCardSummary},
	}

	for _, b := range builders {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := b.build()
		if err != nil {
			s.log.Error("failed to build curated table", zap.String("table", b.name), zap.Error(err))
			continue
		}
		if err := database.Replace(s.db, b.name, t); err != nil {
			s.log.Error("failed to write curated table",
				zap.String("table", b.name), zap.Int("rows", t.Len()), zap.Error(err))
			continue
		}
		s.log.Info("wrote curated table", zap.String("table", b.name), zap.Int("rows", t.Len()))
	}
	return nil
}

// readStaging loads one staging table. Absent or empty sources are a
// warn-and-continue case: the builder emits an empty curated table instead
// of failing the run.
func (s *Service) readStaging(name string) (*table.Table, bool) {
	if !database.HasTable(s.db, name) {
		s.log.Warn("staging table missing", zap.String("table", name))
		return nil, false
	}
	t, err := database.ReadTable(s.db, name)
	if err != nil {
		s.log.Warn("could not read staging table", zap.String("table", name), zap.Error(err))
		return nil, false
	}
	if t.Empty() {
		s.log.Warn("staging table empty", zap.String("table", name))
		return nil, false
	}
	return t, true
}

// readStagingPrefix loads and unions every staging table sharing a name
// prefix, for time-sliced sources. Schemas do not need to match; missing
// columns are null.
func (s *Service) readStagingPrefix(prefix string) (*table.Table, bool) {
	names, err := database.ListTables(s.db, prefix)
	if err != nil {
		s.log.Warn("could not list staging tables", zap.String("prefix", prefix), zap.Error(err))
		return nil, false
	}
	var parts []*table.Table
	for _, name := range names {
		t, err := database.ReadTable(s.db, name)
		if err != nil {
			s.log.Warn("could not read staging table", zap.String("table", name), zap.Error(err))
			continue
		}
		if !t.Empty() {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		s.log.Warn("no staging tables found", zap.String("prefix", prefix))
		return nil, false
	}
	return table.Concat(parts...), true
}
