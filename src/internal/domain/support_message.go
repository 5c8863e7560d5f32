package domain

import "time"

type SupportMessage struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Message     string    `db:"message"`
	IsFromAdmin bool      `db:"is_from_admin"`
	ResponseTo  *int64    `db:"response_to"`
	CreatedAt   time.Time `db:"created_at"`
}
