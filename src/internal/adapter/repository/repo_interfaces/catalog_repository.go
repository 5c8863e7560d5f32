package repo_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, service domain.Service) (domain.Service, error)
	GetByID(ctx context.Context, id int64) (domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
}

type ProductCategoryRepository interface {
	Create(ctx context.Context, category domain.ProductCategory) (domain.ProductCategory, error)
	GetByID(ctx context.Context, id int64) (domain.ProductCategory, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	GetByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, categoryID *int64) ([]domain.Product, error)
}

type ProductReviewRepository interface {
	Create(ctx context.Context, review domain.ProductReview) (domain.ProductReview, error)
	ListByProductID(ctx context.Context, productID int64) ([]domain.ProductReview, error)
}
