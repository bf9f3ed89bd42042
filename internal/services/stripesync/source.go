package stripesync

import (
	"context"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

const pageLimit = 100

// ChargeSource lists the charges to import.
type ChargeSource interface {
	Charges(ctx context.Context) ([]*stripe.Charge, error)
}

// CustomerSource lists the customers to import.
type CustomerSource interface {
	Customers(ctx context.Context) ([]*stripe.Customer, error)
}

// Client reads charges and customers from the Stripe API.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

func (c *Client) Charges(ctx context.Context) ([]*stripe.Charge, error) {
	params := &stripe.ChargeListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(pageLimit)
	params.AddExpand("data.customer")

	var charges []*stripe.Charge
	it := c.api.Charges.List(params)
	for it.Next() {
		charges = append(charges, it.Charge())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return charges, nil
}

func (c *Client) Customers(ctx context.Context) ([]*stripe.Customer, error) {
	params := &stripe.CustomerListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(pageLimit)

	var customers []*stripe.Customer
	it := c.api.Customers.List(params)
	for it.Next() {
		customers = append(customers, it.Customer())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}
