package analytics

import (
	"fmt"
	"time"

	"payflow/internal/models"
)

var refDate = time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)

func payment(id string, amount int64, status models.PaymentStatus, created time.Time) models.Payment {
	return models.Payment{
		ID:       id,
		Amount:   amount,
		Currency: "usd",
		Status:   status,
		Created:  created,
	}
}

func paymentFor(id, name, email string, status models.PaymentStatus) models.Payment {
	p := payment(id, 1000, status, refDate)
	p.Customer = &models.CustomerRef{ID: "cus_" + id, Name: name, Email: email}
	return p
}

func numberedPayments(n int) []models.Payment {
	out := make([]models.Payment, n)
	for i := range out {
		out[i] = payment(fmt.Sprintf("pi_%02d", i+1), int64(100*(i+1)), models.PaymentStatusSucceeded, refDate)
	}
	return out
}
