package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_extend.sql": {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY);")},
	}

	runner := NewRunner(db, fsys)
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	var n int
	if err := db.QueryRow("SELECT count(*) FROM b").Scan(&n); err != nil {
		t.Errorf("table b missing: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied %d migrations, want 0", applied)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("CREATE TABLE b (id INTEGER PRIMARY KEY); INSERT INTO missing VALUES (1);")},
	}

	runner := NewRunner(db, fsys)
	applied, err := runner.Apply(nil)
	if err == nil {
		t.Fatal("expected the bad migration to fail")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestReadMigrationsRejectsBadNames(t *testing.T) {
	db := openTestDB(t)

	for name, fsys := range map[string]fstest.MapFS{
		"missing underscore": {"001.sql": {Data: []byte("SELECT 1;")}},
		"non-numeric":        {"abc_init.sql": {Data: []byte("SELECT 1;")}},
		"zero version":       {"000_init.sql": {Data: []byte("SELECT 1;")}},
	} {
		if _, err := NewRunner(db, fsys).ReadMigrations(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	dup := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := NewRunner(db, dup).ReadMigrations(); err == nil {
		t.Error("duplicate versions: expected error")
	}
}

func TestValidateVersionNewerSchema(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
	}

	runner := NewRunner(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("forcing version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected a newer-schema error")
	}
}
