package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"envlinks/internal/types"
)

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) KVRepository {
	return &settingsRepository{db: db}
}

func (s *settingsRepository) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	values := make([]*types.Setting, 0)
	err := s.db.
		WithContext(ctx).
		Where("name IN ?", keys).
		Find(&values).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte, len(values))
	for _, next := range values {
		result[next.Name] = next.Value
	}
	return result, nil
}

// Set writes every key in a single transaction.
func (s *settingsRepository) Set(ctx context.Context, values map[string][]byte) error {
	now := time.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for name, value := range values {
			row := &types.Setting{Name: name, Value: value, UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *settingsRepository) Remove(ctx context.Context, keys ...string) error {
	return s.db.WithContext(ctx).
		Where("name IN ?", keys).
		Delete(&types.Setting{}).
		Error
}
