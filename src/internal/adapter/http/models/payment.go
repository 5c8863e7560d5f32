package models

import (
	"errors"
	"strings"
)

const maxDescriptionLength = 500

type CreatePaymentIntentRequest struct {
	// Amount is in minor currency units (cents).
	Amount      *int64 `json:"amount"`
	Description string `json:"description,omitempty"`
}

func (r CreatePaymentIntentRequest) Validate() error {
	var errs []string

	if r.Amount == nil {
		errs = append(errs, "amount is required")
	} else if *r.Amount <= 0 {
		errs = append(errs, "amount must be greater than zero")
	}
	if len(strings.TrimSpace(r.Description)) > maxDescriptionLength {
		errs = append(errs, "description must be at most 500 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type TransactionResponse struct {
	ID            int64  `json:"id"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
}

type WebhookResponse struct {
	EventID string `json:"event_id,omitempty"`
	Outcome string `json:"outcome"`
}
