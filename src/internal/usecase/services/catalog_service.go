package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.CatalogService = (*CatalogService)(nil)

type CatalogService struct {
	serviceRepo  repo_interfaces.ServiceRepository
	categoryRepo repo_interfaces.ProductCategoryRepository
	productRepo  repo_interfaces.ProductRepository
	reviewRepo   repo_interfaces.ProductReviewRepository
}

func NewCatalogService(
	serviceRepo repo_interfaces.ServiceRepository,
	categoryRepo repo_interfaces.ProductCategoryRepository,
	productRepo repo_interfaces.ProductRepository,
	reviewRepo repo_interfaces.ProductReviewRepository,
) *CatalogService {
	return &CatalogService{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *CatalogService) ListServices(ctx context.Context) (commons.Response[[]models.ServiceResponse], error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		logger.Error("catalog service list services failed", err, nil)
		return commons.ErrorResponse[[]models.ServiceResponse]("failed to list services", "Unable to fetch services right now"), err
	}

	response := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		response = append(response, toServiceResponse(svc))
	}

	return commons.SuccessResponse("services fetched successfully", response), nil
}

func (s *CatalogService) CreateService(ctx context.Context, req models.CreateServiceRequest) (commons.Response[models.ServiceResponse], error) {
	logger.Info("catalog service create service request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("catalog service create service validation failed", err, nil)
		return commons.ErrorResponse[models.ServiceResponse](commons.MessageValidationFailed, err.Error()), err
	}

	created, err := s.serviceRepo.Create(ctx, domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price.Round(2),
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		logger.Error("catalog service create service repository failed", err, nil)
		return commons.ErrorResponse[models.ServiceResponse]("failed to create service", "Unable to create service right now"), err
	}

	logger.Info("catalog service create service success", logger.Fields{
		"serviceId": created.ID,
	})

	return commons.SuccessResponse("service created successfully", toServiceResponse(created)), nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req models.CreateProductCategoryRequest) (commons.Response[models.ProductCategoryResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ProductCategoryResponse](commons.MessageValidationFailed, err.Error()), err
	}

	created, err := s.categoryRepo.Create(ctx, domain.ProductCategory{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		logger.Error("catalog service create category failed", err, logger.Fields{
			"name": req.Name,
		})
		if errors.Is(err, commons.ErrDuplicate) {
			return commons.AlreadyExists[models.ProductCategoryResponse]("Category", "a category with this name already exists"), err
		}
		return commons.ErrorResponse[models.ProductCategoryResponse]("failed to create category", "Unable to create category right now"), err
	}

	return commons.SuccessResponse("category created successfully", models.ProductCategoryResponse{
		ID:   created.ID,
		Name: created.Name,
	}), nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (commons.Response[models.ProductResponse], error) {
	logger.Info("catalog service create product request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("catalog service create product validation failed", err, nil)
		return commons.ErrorResponse[models.ProductResponse](commons.MessageValidationFailed, err.Error()), err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			logger.Error("catalog service create product category lookup failed", err, logger.Fields{
				"categoryId": *req.CategoryID,
			})
			if errors.Is(err, commons.ErrRecordNotFound) {
				return commons.NotFound[models.ProductResponse]("Category"), err
			}
			return commons.ErrorResponse[models.ProductResponse]("failed to create product", "Unable to create product right now"), err
		}
	}

	created, err := s.productRepo.Create(ctx, domain.Product{
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price.Round(2),
	})
	if err != nil {
		logger.Error("catalog service create product repository failed", err, nil)
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ProductResponse]("Category"), err
		}
		return commons.ErrorResponse[models.ProductResponse]("failed to create product", "Unable to create product right now"), err
	}

	logger.Info("catalog service create product success", logger.Fields{
		"productId": created.ID,
	})

	return commons.SuccessResponse("product created successfully", toProductResponse(created)), nil
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID *int64) (commons.Response[[]models.ProductResponse], error) {
	products, err := s.productRepo.List(ctx, categoryID)
	if err != nil {
		logger.Error("catalog service list products failed", err, nil)
		return commons.ErrorResponse[[]models.ProductResponse]("failed to list products", "Unable to fetch products right now"), err
	}

	response := make([]models.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	return commons.SuccessResponse("products fetched successfully", response), nil
}

func (s *CatalogService) CreateReview(ctx context.Context, userID int64, productID int64, req models.CreateReviewRequest) (commons.Response[models.ReviewResponse], error) {
	logger.Info("catalog service create review request", logger.Fields{
		"userId":    userID,
		"productId": productID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ReviewResponse](commons.MessageValidationFailed, err.Error()), err
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		logger.Error("catalog service create review product lookup failed", err, logger.Fields{
			"productId": productID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ReviewResponse]("Product"), err
		}
		return commons.ErrorResponse[models.ReviewResponse]("failed to create review", "Unable to create review right now"), err
	}

	created, err := s.reviewRepo.Create(ctx, domain.ProductReview{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	})
	if err != nil {
		logger.Error("catalog service create review repository failed", err, logger.Fields{
			"userId":    userID,
			"productId": productID,
		})
		if errors.Is(err, commons.ErrDuplicate) {
			return commons.AlreadyExists[models.ReviewResponse]("Review", "you have already reviewed this product"), err
		}
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[models.ReviewResponse]("Product"), err
		}
		return commons.ErrorResponse[models.ReviewResponse]("failed to create review", "Unable to create review right now"), err
	}

	return commons.SuccessResponse("review created successfully", toReviewResponse(created)), nil
}

func (s *CatalogService) ListReviews(ctx context.Context, productID int64) (commons.Response[[]models.ReviewResponse], error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		logger.Error("catalog service list reviews product lookup failed", err, logger.Fields{
			"productId": productID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.NotFound[[]models.ReviewResponse]("Product"), err
		}
		return commons.ErrorResponse[[]models.ReviewResponse]("failed to list reviews", "Unable to fetch reviews right now"), err
	}

	reviews, err := s.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		logger.Error("catalog service list reviews failed", err, logger.Fields{
			"productId": productID,
		})
		return commons.ErrorResponse[[]models.ReviewResponse]("failed to list reviews", "Unable to fetch reviews right now"), err
	}

	response := make([]models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, toReviewResponse(review))
	}

	return commons.SuccessResponse("reviews fetched successfully", response), nil
}

func toServiceResponse(svc domain.Service) models.ServiceResponse {
	return models.ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		Price:           svc.Price.StringFixed(2),
		DurationMinutes: svc.DurationMinutes,
		CreatedAt:       svc.CreatedAt.Format(time.RFC3339),
	}
}

func toProductResponse(product domain.Product) models.ProductResponse {
	return models.ProductResponse{
		ID:           product.ID,
		CategoryID:   product.CategoryID,
		CategoryName: product.CategoryName,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price.StringFixed(2),
		CreatedAt:    product.CreatedAt.Format(time.RFC3339),
	}
}

func toReviewResponse(review domain.ProductReview) models.ReviewResponse {
	return models.ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		Username:  review.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format(time.RFC3339),
	}
}
