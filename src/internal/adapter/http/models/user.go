package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

const (
	dateLayout         = "2006-01-02"
	minPasswordLength  = 8
	maxUsernameLength  = 150
	maxPhoneLength     = 20
	maxPushTokenLength = 255
)

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Gender      string `json:"gender"`
}

func (r RegisterRequest) Validate() error {
	var errs []string

	username := strings.TrimSpace(r.Username)
	if username == "" {
		errs = append(errs, "username is required")
	} else if len(username) > maxUsernameLength {
		errs = append(errs, "username must be at most 150 characters")
	}
	if email := strings.TrimSpace(r.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, "email must be a valid address")
		}
	}
	if len(r.Password) < minPasswordLength {
		errs = append(errs, "password must be at least 8 characters")
	}
	if phone := strings.TrimSpace(r.PhoneNumber); phone == "" {
		errs = append(errs, "phone_number is required")
	} else if len(phone) > maxPhoneLength {
		errs = append(errs, "phone_number must be at most 20 characters")
	}
	if gender := strings.TrimSpace(r.Gender); gender == "" {
		errs = append(errs, "gender is required")
	} else if !domain.Gender(gender).Valid() {
		errs = append(errs, "gender must be male, female or other")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProfileResponse struct {
	UserID             int64    `json:"user_id"`
	PhoneNumber        *string  `json:"phone_number"`
	Gender             *string  `json:"gender"`
	DateOfBirth        *string  `json:"date_of_birth"`
	Address            *string  `json:"address"`
	City               *string  `json:"city"`
	Country            *string  `json:"country"`
	HasPushToken       bool     `json:"has_push_token"`
	IsServiceProvider  bool     `json:"is_service_provider"`
	IsApprovedProvider bool     `json:"is_approved_provider"`
	SupportResolved    bool     `json:"support_resolved"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	CreatedAt          string   `json:"created_at"`
}

// UpdateProfileRequest is a partial update; nil fields keep their stored value.
type UpdateProfileRequest struct {
	PhoneNumber       *string  `json:"phone_number,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	DateOfBirth       *string  `json:"date_of_birth,omitempty"`
	Address           *string  `json:"address,omitempty"`
	City              *string  `json:"city,omitempty"`
	Country           *string  `json:"country,omitempty"`
	IsServiceProvider *bool    `json:"is_service_provider,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs []string

	if r.PhoneNumber != nil && len(strings.TrimSpace(*r.PhoneNumber)) > maxPhoneLength {
		errs = append(errs, "phone_number must be at most 20 characters")
	}
	if r.Gender != nil && !domain.Gender(strings.TrimSpace(*r.Gender)).Valid() {
		errs = append(errs, "gender must be male, female or other")
	}
	if r.DateOfBirth != nil {
		if dob, err := time.Parse(dateLayout, strings.TrimSpace(*r.DateOfBirth)); err != nil {
			errs = append(errs, "date_of_birth must be in YYYY-MM-DD format")
		} else if dob.After(time.Now()) {
			errs = append(errs, "date_of_birth cannot be in the future")
		}
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, "latitude must be between -90 and 90")
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, "longitude must be between -180 and 180")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// UpdateProviderStatusRequest is an admin change to a profile's provider flags.
// Omitted flags keep their stored value.
type UpdateProviderStatusRequest struct {
	IsServiceProvider  *bool `json:"is_service_provider,omitempty"`
	IsApprovedProvider *bool `json:"is_approved_provider,omitempty"`
}

func (r UpdateProviderStatusRequest) Validate() error {
	if r.IsServiceProvider == nil && r.IsApprovedProvider == nil {
		return errors.New("is_service_provider or is_approved_provider is required")
	}
	if r.IsServiceProvider != nil && !*r.IsServiceProvider && r.IsApprovedProvider != nil && *r.IsApprovedProvider {
		return errors.New("an approved provider must be a service provider")
	}
	return nil
}

type SavePushTokenRequest struct {
	ExpoPushToken string `json:"expo_push_token"`
}

func (r SavePushTokenRequest) Validate() error {
	token := strings.TrimSpace(r.ExpoPushToken)
	if token == "" {
		return errors.New("expo_push_token is required")
	}
	if len(token) > maxPushTokenLength {
		return errors.New("expo_push_token must be at most 255 characters")
	}
	return nil
}

type SavePushTokenResponse struct {
	Saved bool `json:"saved"`
}
