// Package sqlite provides a SQLite-backed ROI storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/roivolution/roivolution/internal/platform/storage/sqlitemigrate"
	"github.com/roivolution/roivolution/internal/roi/storage"
	"github.com/roivolution/roivolution/internal/roi/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists ROI projections in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite ROI store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateEntry appends one projection entry.
func (s *Store) CreateEntry(ctx context.Context, entry storage.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ErrNotConfigured
	}
	id := strings.TrimSpace(entry.ID)
	industry := strings.TrimSpace(entry.IndustryType)
	if id == "" {
		return fmt.Errorf("entry id is required")
	}
	if industry == "" {
		return fmt.Errorf("industry type is required")
	}
	createdAt := entry.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO roi_entries (
		   id,
		   project_budget,
		   net_benefit,
		   roi,
		   expected_success,
		   industry_type,
		   project_duration,
		   created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		entry.ProjectBudget,
		entry.NetBenefit,
		entry.ROI,
		entry.ExpectedSuccess,
		industry,
		entry.ProjectDuration,
		toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("create roi entry: %w", err)
	}
	return nil
}

// ListEntries returns all entries ordered by creation time ascending.
func (s *Store) ListEntries(ctx context.Context) ([]storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, storage.ErrNotConfigured
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, project_budget, net_benefit, roi, expected_success,
		        industry_type, project_duration, created_at
		   FROM roi_entries
		  ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list roi entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []storage.Entry
	for rows.Next() {
		var entry storage.Entry
		var createdAt int64
		if err := rows.Scan(
			&entry.ID,
			&entry.ProjectBudget,
			&entry.NetBenefit,
			&entry.ROI,
			&entry.ExpectedSuccess,
			&entry.IndustryType,
			&entry.ProjectDuration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan roi entry: %w", err)
		}
		entry.CreatedAt = fromMillis(createdAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roi entries: %w", err)
	}
	return entries, nil
}
