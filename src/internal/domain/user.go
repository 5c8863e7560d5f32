package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	ID                 int64      `db:"id"`
	UserID             int64      `db:"user_id"`
	PhoneNumber        *string    `db:"phone_number"`
	Gender             *Gender    `db:"gender"`
	DateOfBirth        *time.Time `db:"date_of_birth"`
	Address            *string    `db:"address"`
	City               *string    `db:"city"`
	Country            *string    `db:"country"`
	ExpoPushToken      *string    `db:"expo_push_token"`
	IsServiceProvider  bool       `db:"is_service_provider"`
	IsApprovedProvider bool       `db:"is_approved_provider"`
	SupportResolved    bool       `db:"support_resolved"`
	Latitude           *float64   `db:"latitude"`
	Longitude          *float64   `db:"longitude"`
	CreatedAt          time.Time  `db:"created_at"`
}
