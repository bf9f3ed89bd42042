package repositories

import (
	"context"
	"errors"

	"payflow/internal/models"

	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository returns a gorm backed PaymentRepository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	var records []paymentRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, storeError("get_all", EntityPayment, err)
	}

	payments := make([]models.Payment, 0, len(records))
	for _, rec := range records {
		payments = append(payments, rec.toModel())
	}
	return payments, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var rec paymentRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeError("get", EntityPayment, ErrPaymentNotFound)
		}
		return nil, storeError("get", EntityPayment, err)
	}
	p := rec.toModel()
	return &p, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	rec := toPaymentRecord(payment)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storeError("create", EntityPayment, ErrDuplicateID)
		}
		return storeError("create", EntityPayment, err)
	}
	payment.Created = rec.CreatedAt
	return nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	rec := toPaymentRecord(payment)
	result := r.db.WithContext(ctx).
		Model(&paymentRecord{}).
		Where("id = ?", payment.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&rec)
	if result.Error != nil {
		return storeError("update", EntityPayment, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("update", EntityPayment, ErrPaymentNotFound)
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&paymentRecord{})
	if result.Error != nil {
		return storeError("delete", EntityPayment, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError("delete", EntityPayment, ErrPaymentNotFound)
	}
	return nil
}
