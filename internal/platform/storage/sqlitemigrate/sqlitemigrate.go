// Package sqlitemigrate applies embedded SQL migrations to a SQLite database.
package sqlitemigrate

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"
)

const (
	ledgerTable = "schema_migrations"
	upMarker    = "-- +migrate Up"
	downMarker  = "-- +migrate Down"
)

// Apply runs every *.sql file in fsys against db at most once, in name order.
//
// A migration's up section and its ledger record commit in one transaction,
// so a failed migration leaves no record and reruns on the next start.
func Apply(db *sql.DB, fsys fs.FS) error {
	if db == nil {
		return errors.New("sql db is required")
	}
	if fsys == nil {
		return errors.New("migration fs is required")
	}

	ledgerSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);`, ledgerTable)
	if _, err := db.Exec(ledgerSQL); err != nil {
		return fmt.Errorf("ensure migration ledger: %w", err)
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	done, err := appliedSet(db)
	if err != nil {
		return err
	}

	for _, name := range names {
		if _, ok := done[name]; ok {
			continue
		}
		if err := applyOne(db, fsys, name); err != nil {
			return err
		}
	}
	return nil
}

func appliedSet(db *sql.DB) (map[string]struct{}, error) {
	rows, err := db.Query("SELECT name FROM " + ledgerTable)
	if err != nil {
		return nil, fmt.Errorf("read migration ledger: %w", err)
	}
	defer rows.Close()

	done := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan migration ledger: %w", err)
		}
		done[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate migration ledger: %w", err)
	}
	return done, nil
}

func applyOne(db *sql.DB, fsys fs.FS, name string) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}
	stmts := upSection(string(raw))
	if strings.TrimSpace(stmts) == "" {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}
	if _, err := tx.Exec(stmts); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply migration %s: %w", name, err)
	}
	record := fmt.Sprintf("INSERT INTO %s (name, applied_at) VALUES (?, ?)", ledgerTable)
	if _, err := tx.Exec(record, name, time.Now().UTC().UnixMilli()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", name, err)
	}
	return nil
}

// upSection keeps the statements between the up and down markers. Files
// without markers run whole.
func upSection(content string) string {
	_, after, found := strings.Cut(content, upMarker)
	if !found {
		return content
	}
	up, _, _ := strings.Cut(after, downMarker)
	return up
}
