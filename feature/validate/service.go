package validate

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shopzada-etl/core/database"
	"shopzada-etl/core/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// reportFile is the validation report written under the report directory.
const reportFile = "curated_validation_report.csv"

// Service runs the read-only integrity checks over the curated tables and
// writes the validation report. It never mutates data.
type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	reportDir string
}

// NewService creates a validation service.
func NewService(db *gorm.DB, log *zap.Logger, reportDir string) *Service {
	return &Service{db: db, log: log, reportDir: reportDir}
}

// entry is one report row.
type entry struct {
	Table      string
	Rows       int
	Duplicates [][]string
	Nulls      map[string]int
	FK         []fkResult
}

type fkResult struct {
	Column   string
	Parent   string
	Mismatch int
}

// Run checks every curated table and writes the report CSV. Violations are
// reported, never silently dropped; the run itself only fails on resource
// errors (unreachable storage, unwritable report directory).
func (s *Service) Run(ctx context.Context) error {
	users := s.read("cur_dim_users")
	products := s.read("cur_dim_products")
	merchants := s.read("cur_dim_merchants")
	orders := s.read("cur_fact_orders")
	lineItems := s.read("cur_fact_line_items")
	delays := s.read("cur_order_delays")
	campaigns := s.read("cur_transactional_campaign_data")
	cards := s.read("cur_user_credit_card_summary")

	report := []entry{
		{
			Table:      "cur_dim_users",
			Rows:       users.Len(),
			Duplicates: DuplicateKeys(users, []string{"user_id"}),
			Nulls:      NullCounts(users, []string{"user_id", "name", "creation_date"}),
		},
		{
			Table:      "cur_dim_products",
			Rows:       products.Len(),
			Duplicates: DuplicateKeys(products, []string{"product_id"}),
			Nulls:      NullCounts(products, []string{"product_id", "product_name"}),
		},
		{
			Table:      "cur_dim_merchants",
			Rows:       merchants.Len(),
			Duplicates: DuplicateKeys(merchants, []string{"merchant_id"}),
			Nulls:      NullCounts(merchants, []string{"merchant_id"}),
		},
		{
			Table:      "cur_fact_orders",
			Rows:       orders.Len(),
			Duplicates: DuplicateKeys(orders, []string{"order_id"}),
			Nulls:      NullCounts(orders, []string{"order_id", "user_id", "transaction_date"}),
			FK: []fkResult{
				{"user_id", "cur_dim_users", FKMismatchCount(orders, users, "user_id", "user_id")},
			},
		},
		{
			Table: "cur_fact_line_items",
			Rows:  lineItems.Len(),
			// line_item_id is an optional natural key; DuplicateKeys skips
			// the check when the column is absent.
			Duplicates: DuplicateKeys(lineItems, []string{"line_item_id"}),
			Nulls:      NullCounts(lineItems, []string{"order_id", "product_id", "price", "quantity"}),
			FK: []fkResult{
				{"order_id", "cur_fact_orders", FKMismatchCount(lineItems, orders, "order_id", "order_id")},
				{"product_id", "cur_dim_products", FKMismatchCount(lineItems, products, "product_id", "product_id")},
			},
		},
		{
			Table:      "cur_order_delays",
			Rows:       delays.Len(),
			Duplicates: DuplicateKeys(delays, []string{"order_id"}),
			Nulls:      NullCounts(delays, []string{"order_id"}),
		},
		{
			Table:      "cur_transactional_campaign_data",
			Rows:       campaigns.Len(),
			Duplicates: DuplicateKeys(campaigns, []string{"order_id"}),
			Nulls:      NullCounts(campaigns, []string{"order_id"}),
		},
		{
			Table:      "cur_user_credit_card_summary",
			Rows:       cards.Len(),
			Duplicates: DuplicateKeys(cards, []string{"user_id"}),
			Nulls:      NullCounts(cards, []string{"user_id", "card_masked"}),
		},
	}

	for _, e := range report {
		fields := []zap.Field{zap.Int("rows", e.Rows)}
		if len(e.Duplicates) > 0 {
			fields = append(fields, zap.Int("duplicate_keys", len(e.Duplicates)))
		}
		for _, fk := range e.FK {
			if fk.Mismatch != 0 {
				fields = append(fields, zap.Int(fmt.Sprintf("fk_mismatch_%s", fk.Column), fk.Mismatch))
			}
		}
		s.log.Info("validated "+e.Table, fields...)
	}

	if err := s.writeReport(report); err != nil {
		return err
	}
	s.log.Info("wrote validation report", zap.String("path", filepath.Join(s.reportDir, reportFile)))
	return nil
}

// read loads a curated table, degrading to an empty table with a warning
// when it is absent so the remaining checks still run.
func (s *Service) read(name string) *table.Table {
	if !database.HasTable(s.db, name) {
		s.log.Warn("curated table missing", zap.String("table", name))
		return table.New()
	}
	t, err := database.ReadTable(s.db, name)
	if err != nil {
		s.log.Warn("could not read curated table", zap.String("table", name), zap.Error(err))
		return table.New()
	}
	return t
}

func (s *Service) writeReport(report []entry) error {
	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.reportDir, reportFile))
	if err != nil {
		return fmt.Errorf("failed to create validation report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"table", "rows", "duplicate_keys", "null_counts", "fk_mismatches"}); err != nil {
		return err
	}
	for _, e := range report {
		if err := w.Write([]string{
			e.Table,
			fmt.Sprintf("%d", e.Rows),
			renderDuplicates(e.Duplicates),
			renderNulls(e.Nulls),
			renderFK(e.FK),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func renderDuplicates(dups [][]string) string {
	parts := make([]string, len(dups))
	for i, d := range dups {
		parts[i] = strings.Join(d, "|")
	}
	return strings.Join(parts, "; ")
}

func renderNulls(nulls map[string]int) string {
	// Deterministic order for the report
	keys := make([]string, 0, len(nulls))
	for k := range nulls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, nulls[k]))
	}
	return strings.Join(parts, "; ")
}

func renderFK(fks []fkResult) string {
	parts := make([]string, 0, len(fks))
	for _, fk := range fks {
		parts = append(parts, fmt.Sprintf("%s->%s missing=%d", fk.Column, fk.Parent, fk.Mismatch))
	}
	return strings.Join(parts, "; ")
}
