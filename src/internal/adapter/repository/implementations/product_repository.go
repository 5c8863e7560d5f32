package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/jmoiron/sqlx"
)

const productSelect = `
SELECT p.id, p.category_id, c.name AS category_name, p.name, p.description, p.price, p.created_at
FROM products p
LEFT JOIN product_categories c ON c.id = p.category_id`

type ProductCategoryRepository struct {
	db *sqlx.DB
}

func NewProductCategoryRepository(db *sqlx.DB) *ProductCategoryRepository {
	return &ProductCategoryRepository{db: db}
}

func (r *ProductCategoryRepository) Create(ctx context.Context, category domain.ProductCategory) (domain.ProductCategory, error) {
	const query = `INSERT INTO product_categories (name) VALUES ($1) RETURNING id, name`

	var created domain.ProductCategory
	if err := r.db.QueryRowxContext(ctx, query, category.Name).StructScan(&created); err != nil {
		if isUniqueViolation(err) {
			return domain.ProductCategory{}, fmt.Errorf("create product category %q: %w", category.Name, commons.ErrDuplicate)
		}
		logger.Error("product category repository create failed", err, logger.Fields{
			"name": category.Name,
		})
		return domain.ProductCategory{}, fmt.Errorf("create product category: %w", err)
	}

	return created, nil
}

func (r *ProductCategoryRepository) GetByID(ctx context.Context, id int64) (domain.ProductCategory, error) {
	var category domain.ProductCategory
	if err := r.db.GetContext(ctx, &category, `SELECT id, name FROM product_categories WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProductCategory{}, commons.ErrRecordNotFound
		}
		return domain.ProductCategory{}, fmt.Errorf("get product category by id: %w", err)
	}

	return category, nil
}

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	const query = `
INSERT INTO products (category_id, name, description, price)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, product.CategoryID, product.Name, product.Description, product.Price).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Product{}, fmt.Errorf("create product: %w", commons.ErrRecordNotFound)
		}
		logger.Error("product repository create failed", err, logger.Fields{
			"name": product.Name,
		})
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	if err := r.db.GetContext(ctx, &product, productSelect+` WHERE p.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, commons.ErrRecordNotFound
		}
		return domain.Product{}, fmt.Errorf("get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) List(ctx context.Context, categoryID *int64) ([]domain.Product, error) {
	products := []domain.Product{}

	var err error
	if categoryID != nil {
		err = r.db.SelectContext(ctx, &products, productSelect+` WHERE p.category_id = $1 ORDER BY p.created_at DESC, p.id DESC`, *categoryID)
	} else {
		err = r.db.SelectContext(ctx, &products, productSelect+` ORDER BY p.created_at DESC, p.id DESC`)
	}
	if err != nil {
		logger.Error("product repository list failed", err, nil)
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

type ProductReviewRepository struct {
	db *sqlx.DB
}

func NewProductReviewRepository(db *sqlx.DB) *ProductReviewRepository {
	return &ProductReviewRepository{db: db}
}

func (r *ProductReviewRepository) Create(ctx context.Context, review domain.ProductReview) (domain.ProductReview, error) {
	const query = `
INSERT INTO product_reviews (product_id, user_id, rating, comment)
VALUES ($1, $2, $3, $4)
RETURNING id, product_id, user_id, rating, comment, created_at`

	var created domain.ProductReview
	if err := r.db.QueryRowxContext(ctx, query, review.ProductID, review.UserID, review.Rating, review.Comment).StructScan(&created); err != nil {
		if isUniqueViolation(err) {
			return domain.ProductReview{}, fmt.Errorf("create product review: %w", commons.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return domain.ProductReview{}, fmt.Errorf("create product review: %w", commons.ErrRecordNotFound)
		}
		logger.Error("product review repository create failed", err, logger.Fields{
			"productId": review.ProductID,
			"userId":    review.UserID,
		})
		return domain.ProductReview{}, fmt.Errorf("create product review: %w", err)
	}

	created.Username = review.Username
	return created, nil
}

func (r *ProductReviewRepository) ListByProductID(ctx context.Context, productID int64) ([]domain.ProductReview, error) {
	const query = `
SELECT r.id, r.product_id, r.user_id, u.username, r.rating, r.comment, r.created_at
FROM product_reviews r
JOIN users u ON u.id = r.user_id
WHERE r.product_id = $1
ORDER BY r.created_at DESC, r.id DESC`

	reviews := []domain.ProductReview{}
	if err := r.db.SelectContext(ctx, &reviews, query, productID); err != nil {
		logger.Error("product review repository list failed", err, logger.Fields{
			"productId": productID,
		})
		return nil, fmt.Errorf("list product reviews: %w", err)
	}

	return reviews, nil
}
