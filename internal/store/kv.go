package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"multibranch-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixed storage keys, one per logical collection or scalar.
const (
	KeyBranches   = "workflow_system_branches"
	KeyWorkflows  = "workflow_system_workflows"
	KeyAttendance = "workflow_system_attendance"
	KeyPayroll    = "workflow_system_payroll"
	KeyUser       = "workflow_system_user"
	KeyActiveTab  = "workflow_system_active_tab"
)

// KV is durable key/value storage holding one serialized value per key.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// GormKV keeps entries in the kv_entries table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (s *GormKV) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.Where("entry_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *GormKV) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *GormKV) Delete(key string) error {
	if err := s.db.Where("entry_key = ?", key).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// MemoryKV is a process-local KV used by tests and STORAGE_DRIVER=memory.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
