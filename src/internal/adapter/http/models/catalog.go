package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
}

func (r CreateServiceRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	errs = append(errs, validatePrice(r.Price)...)
	if r.DurationMinutes <= 0 {
		errs = append(errs, "duration_minutes must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
}

type CreateProductCategoryRequest struct {
	Name string `json:"name"`
}

func (r CreateProductCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type ProductCategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateProductRequest struct {
	CategoryID  *int64          `json:"category_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (r CreateProductRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.CategoryID != nil && *r.CategoryID <= 0 {
		errs = append(errs, "category_id must be greater than zero")
	}
	errs = append(errs, validatePrice(r.Price)...)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ProductResponse struct {
	ID           int64   `json:"id"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        string  `json:"price"`
	CreatedAt    string  `json:"created_at"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r CreateReviewRequest) Validate() error {
	return validateRating(r.Rating)
}

type ReviewResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Username  string `json:"username,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

func validatePrice(price decimal.Decimal) []string {
	var errs []string
	if !price.IsPositive() {
		errs = append(errs, "price must be greater than zero")
	}
	if !price.Equal(price.Round(2)) {
		errs = append(errs, "price must have at most two decimal places")
	}
	if price.GreaterThanOrEqual(decimal.New(1, 8)) {
		errs = append(errs, "price must be less than 100000000")
	}
	return errs
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
