package models

import "time"

// PaymentStatus is the lifecycle state of a payment as reported by the store.
type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentStatuses lists the known statuses in display order.
var PaymentStatuses = []PaymentStatus{
	PaymentStatusSucceeded,
	PaymentStatusPending,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

// Payment method types accepted on creation
const (
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodWallet       = "wallet"
)

// IDPrefixPayment prefixes generated payment identifiers.
const IDPrefixPayment = "pi"

// Payment is a single charge attempt. Amount is in minor currency units.
type Payment struct {
	ID            string         `json:"id"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	Status        PaymentStatus  `json:"status"`
	Description   string         `json:"description,omitempty"`
	Created       time.Time      `json:"created"`
	Customer      *CustomerRef   `json:"customer,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
	Metadata      JSON           `json:"metadata,omitempty"`
}

// CustomerRef is the customer snapshot taken when the payment was made.
// A nil reference means the payment is anonymous.
type CustomerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PaymentMethod is a card or account snapshot.
type PaymentMethod struct {
	Type        string `json:"type"`
	Brand       string `json:"brand,omitempty"`
	Last4       string `json:"last4,omitempty"`
	ExpiryMonth int    `json:"expiryMonth,omitempty"`
	ExpiryYear  int    `json:"expiryYear,omitempty"`
}

// IsSucceeded reports whether the payment counts towards revenue.
func (p Payment) IsSucceeded() bool {
	return p.Status == PaymentStatusSucceeded
}

// CustomerName returns the snapshot name or "anonymous" when there is none.
func (p Payment) CustomerName() string {
	if p.Customer == nil || p.Customer.Name == "" {
		return "anonymous"
	}
	return p.Customer.Name
}
