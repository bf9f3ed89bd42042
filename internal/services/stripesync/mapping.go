package stripesync

import (
	"strings"
	"time"

	"payflow/internal/models"

	"github.com/stripe/stripe-go/v72"
)

// PaymentFromCharge converts a Stripe charge. Refunded charges map to the
// refunded status whatever Stripe reports as their charge status.
func PaymentFromCharge(ch *stripe.Charge) models.Payment {
	p := models.Payment{
		ID:          ch.ID,
		Amount:      ch.Amount,
		Currency:    strings.ToLower(string(ch.Currency)),
		Status:      chargeStatus(ch),
		Description: ch.Description,
		Created:     time.Unix(ch.Created, 0).UTC(),
		Customer:    chargeCustomer(ch),
	}

	if len(ch.Metadata) > 0 {
		p.Metadata = make(models.JSON, len(ch.Metadata))
		for k, v := range ch.Metadata {
			p.Metadata[k] = v
		}
	}

	if d := ch.PaymentMethodDetails; d != nil {
		method := &models.PaymentMethod{Type: string(d.Type)}
		if card := d.Card; card != nil {
			method.Brand = string(card.Brand)
			method.Last4 = card.Last4
			method.ExpiryMonth = int(card.ExpMonth)
			method.ExpiryYear = int(card.ExpYear)
		}
		p.PaymentMethod = method
	}
	return p
}

// CustomerFromStripe converts a Stripe customer. Totals start at zero and
// are filled in from the imported charges.
func CustomerFromStripe(c *stripe.Customer) models.Customer {
	return models.Customer{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Created: time.Unix(c.Created, 0).UTC(),
	}
}

func chargeStatus(ch *stripe.Charge) models.PaymentStatus {
	if ch.Refunded {
		return models.PaymentStatusRefunded
	}
	return models.PaymentStatus(ch.Status)
}

func chargeCustomer(ch *stripe.Charge) *models.CustomerRef {
	ref := &models.CustomerRef{}
	if ch.Customer != nil {
		ref.ID = ch.Customer.ID
		ref.Name = ch.Customer.Name
		ref.Email = ch.Customer.Email
	}
	if b := ch.BillingDetails; b != nil {
		if ref.Name == "" {
			ref.Name = b.Name
		}
		if ref.Email == "" {
			ref.Email = b.Email
		}
	}
	if *ref == (models.CustomerRef{}) {
		return nil
	}
	return ref
}
