// Package prefs persists the notification preference record as a single
// serialized JSON blob under a fixed key.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dining-status-backend/internal/model"
)

// StorageKey is the fixed key the preference record lives under.
const StorageKey = "dining_notification_prefs"

// Record is the raw key/value row backing the preference store.
type Record struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Store defines the preference persistence operations.
type Store interface {
	Load(ctx context.Context) (model.NotificationPreferences, error)
	Save(ctx context.Context, p model.NotificationPreferences) error
}

// gormStore implements Store on a GORM connection.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GORM-backed preference store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Load retrieves the stored record. A missing row or an undecodable value
// yields the default record rather than an error; only storage failures
// propagate.
func (s *gormStore) Load(ctx context.Context) (model.NotificationPreferences, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", StorageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultPreferences(), nil
	}
	if err != nil {
		return model.DefaultPreferences(), fmt.Errorf("failed to load preferences: %w", err)
	}

	var p model.NotificationPreferences
	if err := json.Unmarshal([]byte(rec.Value), &p); err != nil {
		log.Printf("stored preference record is not valid JSON, falling back to defaults: %v", err)
		return model.DefaultPreferences(), nil
	}
	if p.SelectedHalls == nil {
		p.SelectedHalls = []model.HallID{}
	}
	return p, nil
}

// Save replaces the stored record wholesale, write-through.
func (s *gormStore) Save(ctx context.Context, p model.NotificationPreferences) error {
	value, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	rec := Record{Key: StorageKey, Value: string(value)}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
