package profile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shopzada-etl/core/database"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// topValueLimit bounds the frequency listing per profiled column.
const topValueLimit = 20

// fkProbes are the heuristic staging-level relationships worth probing
// before curation. Each probe only runs when both sides exist.
var fkProbes = []struct {
	Column string
	Parent string
}{
	{"user_id", "stg_user_data"},
	{"product_id", "stg_product_list"},
	{"merchant_id", "stg_merchant_data"},
}

// Service profiles the staging tables: per-column null and distinct
// counts, value frequencies for suspicious columns, candidate natural
// keys, and heuristic foreign key probes. Output lands as CSV files in
// the report directory.
type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	reportDir string
}

// NewService creates a profiling service.
func NewService(db *gorm.DB, log *zap.Logger, reportDir string) *Service {
	return &Service{db: db, log: log, reportDir: reportDir}
}

// columnProfile is one row of a table's column report.
type columnProfile struct {
	Column   string
	Nulls    int64
	Distinct int64
	NullPct  float64
}

// tableProfile summarizes one staging table.
type tableProfile struct {
	Table        string
	Rows         int64
	Columns      []columnProfile
	CandidateKey string
	FKNotes      []string
}

// Run profiles every stg_ table. Tables that fail to profile are logged
// and skipped; the run fails only when staging cannot be listed or the
// report directory cannot be written.
func (s *Service) Run(ctx context.Context) error {
	names, err := database.ListTables(s.db, "stg_")
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.log.Warn("no staging tables to profile")
	}
	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}

	var summary []tableProfile
	for _, name := range names {
		tp, err := s.profileTable(name)
		if err != nil {
			s.log.Error("failed to profile table", zap.String("table", name), zap.Error(err))
			continue
		}
		summary = append(summary, tp)
		s.log.Info("profiled table",
			zap.String("table", name),
			zap.Int64("rows", tp.Rows),
			zap.Int("columns", len(tp.Columns)),
			zap.String("candidate_key", tp.CandidateKey))
	}

	if err := s.writeSummary(summary); err != nil {
		return err
	}
	s.log.Info("wrote profile summary", zap.String("path", filepath.Join(s.reportDir, "staging_profile_summary.csv")))
	return nil
}

func (s *Service) profileTable(name string) (tableProfile, error) {
	tp := tableProfile{Table: name}

	if err := s.scanInt64(sq.Select("COUNT(*)").From(database.Quote(s.db, name)), &tp.Rows); err != nil {
		return tp, err
	}

	cols, err := database.GetTableColumns(s.db, name)
	if err != nil {
		return tp, err
	}

	topvals := make(map[string][]valueCount)
	for _, col := range cols {
		cp := columnProfile{Column: col.Field}
		quoted := database.Quote(s.db, col.Field)
		q := database.Quote(s.db, name)

		if err := s.scanInt64(
			sq.Select("COUNT(*)").From(q).Where(quoted+" IS NULL"), &cp.Nulls); err != nil {
			return tp, err
		}
		if err := s.scanInt64(
			sq.Select(fmt.Sprintf("COUNT(DISTINCT %s)", quoted)).From(q), &cp.Distinct); err != nil {
			return tp, err
		}
		if tp.Rows > 0 {
			cp.NullPct = float64(cp.Nulls) / float64(tp.Rows) * 100
		}
		tp.Columns = append(tp.Columns, cp)

		if suspicious(cp, tp.Rows) {
			vals, err := s.topValues(name, col.Field)
			if err != nil {
				return tp, err
			}
			topvals[col.Field] = vals
		}
		if tp.CandidateKey == "" && candidateKey(cp, tp.Rows) {
			tp.CandidateKey = col.Field
		}
	}

	for _, probe := range fkProbes {
		if probe.Parent == name || !hasColumn(cols, probe.Column) {
			continue
		}
		if !database.HasTable(s.db, probe.Parent) {
			continue
		}
		missing, err := s.fkMissing(name, probe.Column, probe.Parent)
		if err != nil {
			return tp, err
		}
		tp.FKNotes = append(tp.FKNotes,
			fmt.Sprintf("%s->%s missing=%d", probe.Column, probe.Parent, missing))
	}

	if err := s.writeColumns(tp); err != nil {
		return tp, err
	}
	if err := s.writeTopValues(name, tp, topvals); err != nil {
		return tp, err
	}
	return tp, nil
}

// suspicious marks columns that deserve a value frequency listing: key
// shaped names, low cardinality, or heavy null rates.
func suspicious(cp columnProfile, rows int64) bool {
	if strings.HasSuffix(cp.Column, "_id") {
		return true
	}
	if rows > 0 && cp.Distinct < 100 {
		return true
	}
	return cp.NullPct > 10
}

// candidateKey reports whether a column looks like the table's natural
// key: id-shaped name, no nulls, one distinct value per row.
func candidateKey(cp columnProfile, rows int64) bool {
	if cp.Column != "id" && !strings.HasSuffix(cp.Column, "_id") {
		return false
	}
	return rows > 0 && cp.Nulls == 0 && cp.Distinct == rows
}

type valueCount struct {
	Value string
	Count int64
}

func (s *Service) topValues(name, col string) ([]valueCount, error) {
	quoted := database.Quote(s.db, col)
	builder := sq.Select(quoted, "COUNT(*) AS n").
		From(database.Quote(s.db, name)).
		Where(quoted + " IS NOT NULL").
		GroupBy(quoted).
		OrderBy("n DESC").
		Limit(topValueLimit)

	sqlStr, args, err := builder.PlaceholderFormat(s.placeholder()).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []valueCount
	for rows.Next() {
		var raw any
		var n int64
		if err := rows.Scan(&raw, &n); err != nil {
			return nil, err
		}
		out = append(out, valueCount{Value: renderValue(raw), Count: n})
	}
	return out, rows.Err()
}

// fkMissing counts distinct child values absent from the parent column
// of the same name.
func (s *Service) fkMissing(child, col, parent string) (int64, error) {
	quoted := database.Quote(s.db, col)
	builder := sq.Select(fmt.Sprintf("COUNT(DISTINCT c.%s)", quoted)).
		From(database.Quote(s.db, child) + " AS c").
		LeftJoin(fmt.Sprintf("%s AS p ON c.%s = p.%s", database.Quote(s.db, parent), quoted, quoted)).
		Where(fmt.Sprintf("c.%s IS NOT NULL AND p.%s IS NULL", quoted, quoted))

	var missing int64
	if err := s.scanInt64(builder, &missing); err != nil {
		return 0, err
	}
	return missing, nil
}

func (s *Service) scanInt64(builder sq.SelectBuilder, dest *int64) error {
	sqlStr, args, err := builder.PlaceholderFormat(s.placeholder()).ToSql()
	if err != nil {
		return err
	}
	return s.db.Raw(sqlStr, args...).Scan(dest).Error
}

func (s *Service) placeholder() sq.PlaceholderFormat {
	if s.db.Dialector.Name() == "postgres" {
		return sq.Dollar
	}
	return sq.Question
}

func hasColumn(cols []database.ColumnInfo, name string) bool {
	for _, c := range cols {
		if c.Field == name {
			return true
		}
	}
	return false
}

func renderValue(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}

func (s *Service) writeColumns(tp tableProfile) error {
	f, err := os.Create(filepath.Join(s.reportDir, tp.Table+"_columns.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"column", "nulls", "distinct", "null_pct"}); err != nil {
		return err
	}
	for _, cp := range tp.Columns {
		if err := w.Write([]string{
			cp.Column,
			fmt.Sprintf("%d", cp.Nulls),
			fmt.Sprintf("%d", cp.Distinct),
			fmt.Sprintf("%.2f", cp.NullPct),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Service) writeTopValues(name string, tp tableProfile, topvals map[string][]valueCount) error {
	f, err := os.Create(filepath.Join(s.reportDir, name+"_topvals.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"column", "value", "count"}); err != nil {
		return err
	}
	// Walk column order, not the map, so the report is deterministic.
	for _, cp := range tp.Columns {
		for _, vc := range topvals[cp.Column] {
			if err := w.Write([]string{cp.Column, vc.Value, fmt.Sprintf("%d", vc.Count)}); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func (s *Service) writeSummary(summary []tableProfile) error {
	f, err := os.Create(filepath.Join(s.reportDir, "staging_profile_summary.csv"))
	if err != nil {
		return fmt.Errorf("failed to create profile summary: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"table", "rows", "columns", "candidate_key", "fk_notes"}); err != nil {
		return err
	}
	for _, tp := range summary {
		if err := w.Write([]string{
			tp.Table,
			fmt.Sprintf("%d", tp.Rows),
			fmt.Sprintf("%d", len(tp.Columns)),
			tp.CandidateKey,
			strings.Join(tp.FKNotes, "; "),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}
