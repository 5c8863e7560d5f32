package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              int64       `db:"id"`
	UserID          int64       `db:"user_id"`
	ServiceID       int64       `db:"service_id"`
	ServiceName     string      `db:"service_name"`
	AppointmentTime time.Time   `db:"appointment_time"`
	Status          OrderStatus `db:"status"`
	CreatedAt       time.Time   `db:"created_at"`
}

// Feedback is the customer's rating of a completed booking, at most one per order.
type Feedback struct {
	ID        int64     `db:"id"`
	OrderID   int64     `db:"order_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
