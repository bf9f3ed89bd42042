package customer

// CreateCustomerInput is the body of an add customer request.
type CreateCustomerInput struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
}

// UpdateCustomerInput changes contact details. Nil fields are left as they are.
type UpdateCustomerInput struct {
	Name  *string `json:"name" validate:"omitempty,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone" validate:"omitempty,phone"`
}
