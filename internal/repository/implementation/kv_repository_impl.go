package implementation

import (
	"context"
	"errors"

	"portfolio-be/internal/model"
	"portfolio-be/internal/repository/contract"
	"portfolio-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeyValueRepositoryImpl struct {
	db *gorm.DB
}

func NewKeyValueRepository(db *gorm.DB) contract.KeyValueRepository {
	return &KeyValueRepositoryImpl{
		db: db,
	}
}

func (r *KeyValueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KeyValueRepositoryImpl) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m model.KeyValueEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByKey{Key: key})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(m.Value), true, nil
}

// Set upserts so a save is a single statement.
func (r *KeyValueRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	m := model.KeyValueEntry{
		Key:   key,
		Value: datatypes.JSON(value),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}

func (r *KeyValueRepositoryImpl) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByKeys{Keys: keys})
	return query.Delete(&model.KeyValueEntry{}).Error
}
