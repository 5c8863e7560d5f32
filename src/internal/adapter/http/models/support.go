package models

import (
	"errors"
	"strings"
)

const maxSupportMessageLength = 2000

type CreateSupportMessageRequest struct {
	Message    string `json:"message"`
	ResponseTo *int64 `json:"response_to,omitempty"`
}

func (r CreateSupportMessageRequest) Validate() error {
	var errs []string

	errs = append(errs, validateMessage(r.Message)...)
	if r.ResponseTo != nil && *r.ResponseTo <= 0 {
		errs = append(errs, "response_to must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ReplySupportMessageRequest struct {
	Message string `json:"message"`
}

func (r ReplySupportMessageRequest) Validate() error {
	if errs := validateMessage(r.Message); len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type SupportMessageResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Message     string `json:"message"`
	IsFromAdmin bool   `json:"is_from_admin"`
	ResponseTo  *int64 `json:"response_to"`
	CreatedAt   string `json:"created_at"`
}

func validateMessage(message string) []string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return []string{"message is required"}
	}
	if len(trimmed) > maxSupportMessageLength {
		return []string{"message must be at most 2000 characters"}
	}
	return nil
}
