package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// GormStore persists each collection as one row of the store_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a record store backed by db. The store_entries table
// must already exist (see database.Manager.RunMigrations).
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Read implements RecordStore.
func (s *GormStore) Read(ctx context.Context, c Collection) ([]models.Record, error) {
	var entry models.StoreEntry
	err := s.db.WithContext(ctx).Where("key = ?", string(c)).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return Decode(c, []byte(entry.Value))
}

// Write implements RecordStore.
func (s *GormStore) Write(ctx context.Context, c Collection, records []models.Record) error {
	raw, err := Encode(records)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.put(ctx, c, string(raw))
}

// PutRaw stores a payload verbatim, bypassing encoding.
func (s *GormStore) PutRaw(ctx context.Context, c Collection, raw string) error {
	return s.put(ctx, c, raw)
}

func (s *GormStore) put(ctx context.Context, c Collection, value string) error {
	entry := models.StoreEntry{Key: string(c), Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
