package repositories

import (
	"context"
	"errors"

	"payflow/internal/models"

	"gorm.io/gorm"
)

type apiKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository returns a gorm backed APIKeyRepository.
func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) GetAll(ctx context.Context) ([]models.APIKey, error) {
	var records []apiKeyRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, storeError("get_all", EntityAPIKey, err)
	}

	keys := make([]models.APIKey, 0, len(records))
	for _, rec := range records {
		keys = append(keys, rec.toModel())
	}
	return keys, nil
}

func (r *apiKeyRepository) GetByID(ctx context.Context, id string) (*models.APIKey, error) {
	var rec apiKeyRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeError("get", EntityAPIKey, ErrAPIKeyNotFound)
		}
		return nil, storeError("get", EntityAPIKey, err)
	}
	k := rec.toModel()
	return &k, nil
}

func (r *apiKeyRepository) Create(ctx context.Context, key *models.APIKey) error {
	rec := toAPIKeyRecord(key)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storeError("create", EntityAPIKey, ErrDuplicateID)
		}
		return storeError("create", EntityAPIKey, err)
	}
	key.Created = rec.CreatedAt
	return nil
}

func (r *apiKeyRepository) Update(ctx context.Context, key *models.APIKey) error {
	rec := toAPIKeyRecord(key)
	result := r.db.WithContext(ctx).
		Model(&apiKeyRecord{}).
		Where("id = ?", key.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&rec)
	if result.Error != nil {
		return storeError("update", EntityAPIKey, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("update", EntityAPIKey, ErrAPIKeyNotFound)
	}
	return nil
}

func (r *apiKeyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&apiKeyRecord{})
	if result.Error != nil {
		return storeError("delete", EntityAPIKey, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("delete", EntityAPIKey, ErrAPIKeyNotFound)
	}
	return nil
}
