package sqlite

import (
	"path/filepath"
	"testing"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName == "" {
		t.Error("DriverName should not be empty")
	}

	if info.Package == "" {
		t.Error("Package should not be empty")
	}

	if info.DriverName != DriverName() {
		t.Errorf("DriverName mismatch: info=%s, func=%s", info.DriverName, DriverName())
	}

	if info.DriverType != DriverType() {
		t.Errorf("DriverType mismatch: info=%s, func=%s", info.DriverType, DriverType())
	}

	if info.IsCGO != IsCGO() {
		t.Errorf("IsCGO mismatch: info=%v, func=%v", info.IsCGO, IsCGO())
	}

	t.Logf("SQLite driver: %s (%s) from %s", info.DriverName, info.DriverType, info.Package)
}

func TestDriverTypeConsistency(t *testing.T) {
	switch DriverType() {
	case "purego":
		if IsCGO() {
			t.Error("IsCGO() should be false for purego driver")
		}
		if DriverName() != "sqlite" {
			t.Errorf("purego driver should use 'sqlite' name, got '%s'", DriverName())
		}
	case "cgo":
		if !IsCGO() {
			t.Error("IsCGO() should be true for cgo driver")
		}
		if DriverName() != "sqlite3" {
			t.Errorf("cgo driver should use 'sqlite3' name, got '%s'", DriverName())
		}
	default:
		t.Errorf("unknown driver type: %s", DriverType())
	}
}

func createBooks(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "books.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE books (id INTEGER PRIMARY KEY, name TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO books (name) VALUES (?)`, "Genesis"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}
	return dbPath
}

func TestOpen(t *testing.T) {
	db, err := Open(createBooks(t))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRow(`SELECT name FROM books WHERE id = 1`).Scan(&name); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if name != "Genesis" {
		t.Errorf("name = %q, want %q", name, "Genesis")
	}
}

func TestOpenReadOnly(t *testing.T) {
	rodb, err := OpenReadOnly(createBooks(t))
	if err != nil {
		t.Fatalf("failed to open read-only: %v", err)
	}
	defer rodb.Close()

	var name string
	if err := rodb.QueryRow(`SELECT name FROM books WHERE id = 1`).Scan(&name); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if name != "Genesis" {
		t.Errorf("name = %q, want %q", name, "Genesis")
	}

	if _, err := rodb.Exec(`INSERT INTO books (name) VALUES (?)`, "Exodus"); err == nil {
		t.Error("insert on a read-only database succeeded")
	}
}
