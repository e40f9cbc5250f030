package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"posada/internal/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is the row shape of the snapshots table.
type Snapshot struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore persists snapshots in a single key/value table through GORM.
type GormStore struct {
	db *gorm.DB
}

// New creates a GormStore on an already-migrated database.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load reads and unmarshals the snapshot under key.
func (s *GormStore) Load(key string, v any) (bool, error) {
	var row Snapshot
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load snapshot %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(row.Value), v); err != nil {
		// A corrupted value is recoverable: treat it as absent and let
		// the caller fall back to defaults.
		logger.Get().Warnw("discarding unparsable snapshot",
			"key", key,
			"error", err.Error(),
		)
		return false, nil
	}
	return true, nil
}

// Save marshals v and upserts it under key.
func (s *GormStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %q: %w", key, err)
	}

	row := Snapshot{Key: key, Value: string(data), UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", key, err)
	}
	return nil
}

// Delete removes the snapshot under key.
func (s *GormStore) Delete(key string) error {
	if err := s.db.Delete(&Snapshot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete snapshot %q: %w", key, err)
	}
	return nil
}
