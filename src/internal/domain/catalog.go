package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	Price           decimal.Decimal `db:"price"`
	DurationMinutes int             `db:"duration_minutes"`
	CreatedAt       time.Time       `db:"created_at"`
}

type ProductCategory struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Product struct {
	ID           int64           `db:"id"`
	CategoryID   *int64          `db:"category_id"`
	CategoryName *string         `db:"category_name"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Price        decimal.Decimal `db:"price"`
	CreatedAt    time.Time       `db:"created_at"`
}

type ProductReview struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	UserID    int64     `db:"user_id"`
	Username  string    `db:"username"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
