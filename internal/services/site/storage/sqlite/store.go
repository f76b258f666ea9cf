// Package sqlite provides the site persistence adapter backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/mvaleri/atrium/internal/platform/storage/sqlitemigrate"
	sitestorage "github.com/mvaleri/atrium/internal/services/site/storage"
	"github.com/mvaleri/atrium/internal/services/site/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for site data.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a site SQLite store.
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

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetPreference loads one visitor's stored preferences.
func (s *Store) GetPreference(ctx context.Context, visitorID string) (sitestorage.Preference, bool, error) {
	if s == nil || s.sqlDB == nil {
		return sitestorage.Preference{}, false, fmt.Errorf("storage is not configured")
	}
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return sitestorage.Preference{}, false, fmt.Errorf("visitor id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT visitor_id, theme, updated_at
		 FROM preferences
		 WHERE visitor_id = ?`,
		visitorID,
	)

	var pref sitestorage.Preference
	var updatedAt int64
	if err := row.Scan(&pref.VisitorID, &pref.Theme, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return sitestorage.Preference{}, false, nil
		}
		return sitestorage.Preference{}, false, fmt.Errorf("get preference: %w", err)
	}
	pref.UpdatedAt = unixMillisToTime(updatedAt)
	return pref, true, nil
}

// PutPreference upserts one visitor's stored preferences.
func (s *Store) PutPreference(ctx context.Context, pref sitestorage.Preference) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	pref.VisitorID = strings.TrimSpace(pref.VisitorID)
	if pref.VisitorID == "" {
		return fmt.Errorf("visitor id is required")
	}
	pref.Theme = strings.TrimSpace(pref.Theme)
	if pref.Theme == "" {
		return fmt.Errorf("theme is required")
	}
	if pref.UpdatedAt.IsZero() {
		pref.UpdatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO preferences (visitor_id, theme, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(visitor_id) DO UPDATE SET
		   theme = excluded.theme,
		   updated_at = excluded.updated_at`,
		pref.VisitorID,
		pref.Theme,
		timeToUnixMillis(pref.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put preference: %w", err)
	}
	return nil
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return sqlitemigrate.Apply(s.sqlDB, migrations.FS)
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ sitestorage.Store = (*Store)(nil)
