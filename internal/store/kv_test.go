package store

import (
	"fmt"
	"testing"

	"multibranch-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGormKVSetGetDelete(t *testing.T) {
	kv := NewGormKV(openSQLite(t))

	if _, ok, err := kv.Get(KeyBranches); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := kv.Set(KeyBranches, `[1]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(KeyBranches, `[1,2]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := kv.Get(KeyBranches)
	if err != nil || !ok || v != `[1,2]` {
		t.Fatalf("expected overwritten value, got %q ok=%v err=%v", v, ok, err)
	}
	if err := kv.Delete(KeyBranches); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(KeyBranches); ok {
		t.Fatalf("key still present after delete")
	}
}

func TestGormKVBacksCollection(t *testing.T) {
	db := openSQLite(t)
	c := NewCollection(NewGormKV(db), KeyBranches, seed, itemID)
	if err := c.Append(item{ID: "3", Name: "Eastside"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// a fresh collection over the same table sees the persisted list
	again := NewCollection(NewGormKV(db), KeyBranches, nil, itemID)
	snap, err := again.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap) != 3 || snap[2].Name != "Eastside" {
		t.Fatalf("expected persisted list, got %+v", snap)
	}
}
