package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB creates a real SQLite database file with one marker row.
func newTestDB(t *testing.T, marker string) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "care.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE marker (value TEXT)"); err != nil {
		t.Fatalf("creating table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO marker (value) VALUES (?)", marker); err != nil {
		t.Fatalf("inserting marker: %v", err)
	}
	return dbPath
}

func readMarker(t *testing.T, dbPath string) string {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	var value string
	if err := db.QueryRow("SELECT value FROM marker").Scan(&value); err != nil {
		t.Fatalf("reading marker: %v", err)
	}
	return value
}

func TestCreateAndList(t *testing.T) {
	dbPath := newTestDB(t, "original")
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if readMarker(t, path) != "original" {
		t.Error("backup does not contain the source data")
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List returned %d backups, want 1", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("listed path %s, want %s", backups[0].Path, path)
	}
	if backups[0].Size == 0 {
		t.Error("listed backup has zero size")
	}
}

func TestCreateMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected an error for a missing database")
	}
}

func TestListEmptyDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "care.db"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List returned %d backups, want 0", len(backups))
	}
}

func TestRestoreReplacesDatabase(t *testing.T) {
	dbPath := newTestDB(t, "before")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutate the live database after the backup.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	if _, err := db.Exec("UPDATE marker SET value = 'after'"); err != nil {
		t.Fatalf("mutating database: %v", err)
	}
	db.Close()

	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := readMarker(t, dbPath); got != "before" {
		t.Errorf("restored marker = %q, want %q", got, "before")
	}

	// The pre-restore state was snapshotted.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a pre-restore snapshot, got %d backups", len(backups))
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	dbPath := newTestDB(t, "data")
	mgr := NewManager(dbPath)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("writing garbage file: %v", err)
	}

	if err := mgr.Restore(garbage); err == nil {
		t.Error("expected Restore to reject a non-database file")
	}
	if got := readMarker(t, dbPath); got != "data" {
		t.Error("database was modified by a failed restore")
	}
}
