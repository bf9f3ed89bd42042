package payment

import "errors"

var (
	ErrNotRefundable   = errors.New("only succeeded payments can be refunded")
	ErrUnknownCustomer = errors.New("customer does not exist")
)
