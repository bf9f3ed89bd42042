package payment

import "payflow/internal/models"

// DefaultCurrency is used when a payment is created without one.
const DefaultCurrency = "usd"

// CreatePaymentInput is the body of a create payment request. Amount is in
// minor currency units.
type CreatePaymentInput struct {
	CustomerID        string      `json:"customerId" validate:"required"`
	Amount            int64       `json:"amount" validate:"gt=0,lte=99999999"`
	Currency          string      `json:"currency" validate:"omitempty,len=3,alpha"`
	Description       string      `json:"description" validate:"required,min=3,max=500"`
	PaymentMethodType string      `json:"paymentMethodType" validate:"omitempty,oneof=card bank_transfer wallet"`
	Metadata          models.JSON `json:"metadata"`
}
