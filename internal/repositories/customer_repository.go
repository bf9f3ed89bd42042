package repositories

import (
	"context"
	"errors"

	"payflow/internal/models"

	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository returns a gorm backed CustomerRepository.
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	var records []customerRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, storeError("get_all", EntityCustomer, err)
	}

	customers := make([]models.Customer, 0, len(records))
	for _, rec := range records {
		customers = append(customers, rec.toModel())
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var rec customerRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeError("get", EntityCustomer, ErrCustomerNotFound)
		}
		return nil, storeError("get", EntityCustomer, err)
	}
	c := rec.toModel()
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	rec := toCustomerRecord(customer)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storeError("create", EntityCustomer, ErrDuplicateID)
		}
		return storeError("create", EntityCustomer, err)
	}
	customer.Created = rec.CreatedAt
	return nil
}

func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	rec := toCustomerRecord(customer)
	result := r.db.WithContext(ctx).
		Model(&customerRecord{}).
		Where("id = ?", customer.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&rec)
	if result.Error != nil {
		return storeError("update", EntityCustomer, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("update", EntityCustomer, ErrCustomerNotFound)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&customerRecord{})
	if result.Error != nil {
		return storeError("delete", EntityCustomer, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("delete", EntityCustomer, ErrCustomerNotFound)
	}
	return nil
}
