package service_interfaces

import (
	"context"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
)

type CatalogService interface {
	ListServices(ctx context.Context) (commons.Response[[]models.ServiceResponse], error)
	CreateService(ctx context.Context, req models.CreateServiceRequest) (commons.Response[models.ServiceResponse], error)
	CreateCategory(ctx context.Context, req models.CreateProductCategoryRequest) (commons.Response[models.ProductCategoryResponse], error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (commons.Response[models.ProductResponse], error)
	ListProducts(ctx context.Context, categoryID *int64) (commons.Response[[]models.ProductResponse], error)
	CreateReview(ctx context.Context, userID int64, productID int64, req models.CreateReviewRequest) (commons.Response[models.ReviewResponse], error)
	ListReviews(ctx context.Context, productID int64) (commons.Response[[]models.ReviewResponse], error)
}
