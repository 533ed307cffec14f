package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStorageRepository struct {
	db *gorm.DB
}

func NewGormStorageRepository(db *gorm.DB) *GormStorageRepository {
	return &GormStorageRepository{db}
}

func (r *GormStorageRepository) Get(ctx context.Context, key string) (string, error) {
	var entry model.StorageEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (r *GormStorageRepository) Set(ctx context.Context, key, value string) error {
	entry := model.StorageEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *GormStorageRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&model.StorageEntry{}, "key = ?", key).Error
}
