package customer

import "errors"

var ErrEmailTaken = errors.New("a customer with this email already exists")
