package repositories

import (
	"time"

	"payflow/internal/models"
)

// paymentRecord is the payments table. Snapshots are flattened into columns
// so a missing customer or payment method is simply a set of empty columns.
type paymentRecord struct {
	ID                string `gorm:"primaryKey;size:64"`
	Amount            int64  `gorm:"not null"`
	Currency          string `gorm:"size:3;not null;default:'usd'"`
	Status            string `gorm:"size:20;not null;index"`
	Description       string
	CustomerID        string `gorm:"size:64;index"`
	CustomerName      string
	CustomerEmail     string
	MethodType        string `gorm:"size:32"`
	MethodBrand       string `gorm:"size:32"`
	MethodLast4       string `gorm:"size:4"`
	MethodExpiryMonth int
	MethodExpiryYear  int
	Metadata          models.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time   `gorm:"index"`
	UpdatedAt         time.Time
}

func (paymentRecord) TableName() string { return "payments" }

type customerRecord struct {
	ID                string `gorm:"primaryKey;size:64"`
	Name              string `gorm:"not null"`
	Email             string `gorm:"not null;index"`
	Phone             string
	TotalSpent        int64 `gorm:"not null;default:0"`
	PaymentCount      int   `gorm:"not null;default:0"`
	MethodType        string `gorm:"size:32"`
	MethodBrand       string `gorm:"size:32"`
	MethodLast4       string `gorm:"size:4"`
	MethodExpiryMonth int
	MethodExpiryYear  int
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

func (customerRecord) TableName() string { return "customers" }

type apiKeyRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"not null"`
	Mode      string `gorm:"size:8;not null;index"`
	Key       string `gorm:"not null;uniqueIndex"`
	LastUsed  *time.Time
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (apiKeyRecord) TableName() string { return "api_keys" }

// Tables lists every persistence model for auto-migration.
func Tables() []interface{} {
	return []interface{}{&paymentRecord{}, &customerRecord{}, &apiKeyRecord{}}
}

func toPaymentRecord(p *models.Payment) paymentRecord {
	rec := paymentRecord{
		ID:          p.ID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      string(p.Status),
		Description: p.Description,
		Metadata:    p.Metadata,
		CreatedAt:   p.Created,
	}
	if p.Customer != nil {
		rec.CustomerID = p.Customer.ID
		rec.CustomerName = p.Customer.Name
		rec.CustomerEmail = p.Customer.Email
	}
	if m := p.PaymentMethod; m != nil {
		rec.MethodType = m.Type
		rec.MethodBrand = m.Brand
		rec.MethodLast4 = m.Last4
		rec.MethodExpiryMonth = m.ExpiryMonth
		rec.MethodExpiryYear = m.ExpiryYear
	}
	return rec
}

func (r paymentRecord) toModel() models.Payment {
	p := models.Payment{
		ID:          r.ID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Status:      models.PaymentStatus(r.Status),
		Description: r.Description,
		Created:     r.CreatedAt,
		Metadata:    r.Metadata,
		PaymentMethod: methodFromColumns(
			r.MethodType, r.MethodBrand, r.MethodLast4, r.MethodExpiryMonth, r.MethodExpiryYear,
		),
	}
	if r.CustomerID != "" || r.CustomerName != "" || r.CustomerEmail != "" {
		p.Customer = &models.CustomerRef{
			ID:    r.CustomerID,
			Name:  r.CustomerName,
			Email: r.CustomerEmail,
		}
	}
	return p
}

func toCustomerRecord(c *models.Customer) customerRecord {
	rec := customerRecord{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		TotalSpent:   c.TotalSpent,
		PaymentCount: c.PaymentCount,
		CreatedAt:    c.Created,
	}
	if m := c.DefaultPaymentMethod; m != nil {
		rec.MethodType = m.Type
		rec.MethodBrand = m.Brand
		rec.MethodLast4 = m.Last4
		rec.MethodExpiryMonth = m.ExpiryMonth
		rec.MethodExpiryYear = m.ExpiryYear
	}
	return rec
}

func (r customerRecord) toModel() models.Customer {
	return models.Customer{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Created:      r.CreatedAt,
		TotalSpent:   r.TotalSpent,
		PaymentCount: r.PaymentCount,
		DefaultPaymentMethod: methodFromColumns(
			r.MethodType, r.MethodBrand, r.MethodLast4, r.MethodExpiryMonth, r.MethodExpiryYear,
		),
	}
}

func toAPIKeyRecord(k *models.APIKey) apiKeyRecord {
	return apiKeyRecord{
		ID:        k.ID,
		Name:      k.Name,
		Mode:      k.Mode,
		Key:       k.Key,
		LastUsed:  k.LastUsed,
		CreatedAt: k.Created,
	}
}

func (r apiKeyRecord) toModel() models.APIKey {
	return models.APIKey{
		ID:       r.ID,
		Name:     r.Name,
		Mode:     r.Mode,
		Key:      r.Key,
		Created:  r.CreatedAt,
		LastUsed: r.LastUsed,
	}
}

func methodFromColumns(kind, brand, last4 string, month, year int) *models.PaymentMethod {
	if kind == "" && brand == "" && last4 == "" {
		return nil
	}
	return &models.PaymentMethod{
		Type:        kind,
		Brand:       brand,
		Last4:       last4,
		ExpiryMonth: month,
		ExpiryYear:  year,
	}
}
