package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi"
)

type CatalogController struct {
	service service_interfaces.CatalogService
}

func NewCatalogController(service service_interfaces.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

func (c *CatalogController) RegisterRoutes(r chi.Router, userAuth, adminAuth func(http.Handler) http.Handler) {
	r.Get("/services", c.listServices)
	r.Get("/products", c.listProducts)
	r.Get("/products/{id}/reviews", c.listReviews)
	r.With(passthrough(userAuth)).Post("/products/{id}/reviews", c.createReview)

	r.Group(func(r chi.Router) {
		r.Use(adminOnly(adminAuth))
		r.Post("/admin/services", c.createService)
		r.Post("/admin/product-categories", c.createCategory)
		r.Post("/admin/products", c.createProduct)
	})
}

func (c *CatalogController) listServices(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListServices(r.Context())
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *CatalogController) listProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	var categoryID *int64
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			if err == nil {
				err = errors.New("category must be greater than zero")
			}
			fail[[]models.ProductResponse](w, r, start, http.StatusBadRequest, err, commons.MessageValidationFailed, "category must be a positive integer")
			return
		}
		categoryID = &id
	}

	response, err := c.service.ListProducts(r.Context(), categoryID)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *CatalogController) listReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	productID, ok := pathID[[]models.ReviewResponse](w, r, start, "id")
	if !ok {
		return
	}

	response, err := c.service.ListReviews(r.Context(), productID)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *CatalogController) createReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.ReviewResponse](w, r, start)
	if !ok {
		return
	}
	productID, ok := pathID[models.ReviewResponse](w, r, start, "id")
	if !ok {
		return
	}
	req, ok := decodeJSON[models.CreateReviewRequest, models.ReviewResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateReview(r.Context(), userID, productID, req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *CatalogController) createService(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := decodeJSON[models.CreateServiceRequest, models.ServiceResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateService(r.Context(), req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *CatalogController) createCategory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := decodeJSON[models.CreateProductCategoryRequest, models.ProductCategoryResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateCategory(r.Context(), req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *CatalogController) createProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := decodeJSON[models.CreateProductRequest, models.ProductResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.CreateProduct(r.Context(), req)
	respond(w, r, start, http.StatusCreated, response, err)
}
