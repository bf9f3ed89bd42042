package models

import "time"

// IDPrefixCustomer prefixes generated customer identifiers.
const IDPrefixCustomer = "cus"

// Customer is a payer known to the store. TotalSpent and PaymentCount are
// maintained by the store; nothing in this service recomputes them.
type Customer struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone,omitempty"`
	Created              time.Time      `json:"created"`
	TotalSpent           int64          `json:"totalSpent"`
	PaymentCount         int            `json:"paymentCount"`
	DefaultPaymentMethod *PaymentMethod `json:"defaultPaymentMethod,omitempty"`
}

// Ref returns the snapshot stored on payments made by this customer.
func (c Customer) Ref() *CustomerRef {
	return &CustomerRef{ID: c.ID, Name: c.Name, Email: c.Email}
}
