package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"shopzada-etl/core/database"
	"shopzada-etl/core/source"
	"shopzada-etl/core/table"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service lands raw dataset files into staging tables.
type Service struct {
	db  *gorm.DB
	src source.Source
	log *zap.Logger
}

// NewService creates an ingestion service.
func NewService(db *gorm.DB, src source.Source, log *zap.Logger) *Service {
	return &Service{db: db, src: src, log: log}
}

// Run ingests every file the source lists. Failure isolation is per file:
// one malformed file is logged and skipped, the batch continues. An empty
// or unreadable source is fatal, since it means the whole input set is
// missing.
func (s *Service) Run(ctx context.Context) error {
	names, err := s.src.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list raw files: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("no raw files found")
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.IngestFile(ctx, name); err != nil {
			s.log.Error("ingest failed", zap.String("file", name), zap.Error(err))
		}
	}
	s.log.Info("ingest complete", zap.Int("files", len(names)))
	return nil
}

// IngestFile parses one raw file and writes its staging table.
func (s *Service) IngestFile(ctx context.Context, name string) error {
	format := Detect(name)
	if format == FormatUnsupported {
		s.log.Info("skipping unsupported extension", zap.String("file", name))
		return nil
	}

	rc, err := s.src.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	log := s.log.With(zap.String("file", name), zap.Stringer("format", format))

	var t *table.Table
	switch format {
	case FormatDelimited:
		t, err = LoadDelimited(data, Delimiter(firstLine(data)))
	case FormatJSON:
		t, err = LoadJSON(data, log)
	case FormatHTML:
		t, err = LoadHTML(data)
	case FormatSpreadsheet:
		t, err = LoadSpreadsheet(data)
	case FormatParquet:
		t, err = LoadParquet(data, log)
	case FormatObject:
		t, err = LoadObject(data, log)
	}
	if err != nil {
		return err
	}

	t.NormalizeColumns()
	t.Sanitize()

	tableName := StagingTableName(name)
	if err := database.Replace(s.db, tableName, t); err != nil {
		return err
	}
	log.Info("staged", zap.String("table", tableName), zap.Int("rows", t.Len()))
	return nil
}

// StagingTableName derives the deterministic staging table name for a raw
// file: stg_ + lowercased basename without extension, with spaces and
// hyphens mapped to underscores.
func StagingTableName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.ReplaceAll(base, "-", "_")
	return "stg_" + base
}

// firstLine returns the text up to the first newline, for delimiter
// sniffing.
func firstLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return string(data[:i])
	}
	return string(data)
}
