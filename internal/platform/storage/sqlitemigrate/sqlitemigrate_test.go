package sqlitemigrate

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query int value: %v", err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, tableName string) bool {
	t.Helper()
	var name string
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", tableName)
	if err := row.Scan(&name); err != nil {
		if err == sql.ErrNoRows {
			return false
		}
		t.Fatalf("check table exists: %v", err)
	}
	return name == tableName
}

func TestApplyRecordsMigrations(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("ledger rows = %d, want 1", got)
	}
	if !tableExists(t, db, "items") {
		t.Fatal("expected migrated table to exist")
	}
}

func TestApplySkipsDownSection(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nCREATE TABLE should_not_exist(id TEXT);"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if tableExists(t, db, "should_not_exist") {
		t.Fatal("down section must not run")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := Apply(db, migrations); err != nil {
		t.Fatalf("replay should be a no-op, got %v", err)
	}

	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("ledger rows after replay = %d, want 1", got)
	}
}

func TestApplyRunsFilesInNameOrder(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"002_alter.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nALTER TABLE items ADD COLUMN label TEXT;"),
		},
		"001_create.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("ledger rows = %d, want 2", got)
	}
}

func TestApplyLeavesFailedMigrationUnrecorded(t *testing.T) {
	db := openInMemoryDB(t)

	bad := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREAT table things(id INT);"),
		},
	}
	if err := Apply(db, bad); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("ledger rows after failure = %d, want 0", got)
	}

	fixed := fstest.MapFS{
		"001_bad.sql": &fstest.MapFile{
			Data: []byte("-- +migrate Up\nCREATE TABLE things(id INTEGER PRIMARY KEY);"),
		},
	}
	if err := Apply(db, fixed); err != nil {
		t.Fatalf("apply fixed migration: %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("ledger rows after fix = %d, want 1", got)
	}
}

func TestApplyRunsUnmarkedFilesWhole(t *testing.T) {
	db := openInMemoryDB(t)

	migrations := fstest.MapFS{
		"001_plain.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE plain(id TEXT PRIMARY KEY);"),
		},
	}

	if err := Apply(db, migrations); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !tableExists(t, db, "plain") {
		t.Fatal("expected unmarked file to run whole")
	}
}

func TestApplyRequiresDatabase(t *testing.T) {
	if err := Apply(nil, fstest.MapFS{}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
