package database

import (
	"path/filepath"
	"testing"

	"multibranch-backend/internal/config"
	"multibranch-backend/internal/models"
)

func TestOpenSQLiteMigrates(t *testing.T) {
	cfg := &config.Config{StorageDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "test.db")}
	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !db.Migrator().HasTable(&models.KVEntry{}) {
		t.Fatalf("kv_entries table missing after migration")
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(&config.Config{StorageDriver: "mongo"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
