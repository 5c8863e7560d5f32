package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/controller"
	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceStub struct {
	registerFn func(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error)
	profileFn  func(ctx context.Context, userID int64) (commons.Response[models.ProfileResponse], error)
	updateFn   func(ctx context.Context, userID int64, req models.UpdateProfileRequest) (commons.Response[models.ProfileResponse], error)
	tokenFn    func(ctx context.Context, userID int64, req models.SavePushTokenRequest) (commons.Response[models.SavePushTokenResponse], error)
	providerFn func(ctx context.Context, userID int64, req models.UpdateProviderStatusRequest) (commons.Response[models.ProfileResponse], error)
}

func (s *userServiceStub) Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error) {
	return s.registerFn(ctx, req)
}

func (s *userServiceStub) Authenticate(context.Context, string, string) (domain.User, error) {
	return domain.User{}, commons.ErrInvalidCredentials
}

func (s *userServiceStub) GetProfile(ctx context.Context, userID int64) (commons.Response[models.ProfileResponse], error) {
	return s.profileFn(ctx, userID)
}

func (s *userServiceStub) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (commons.Response[models.ProfileResponse], error) {
	return s.updateFn(ctx, userID, req)
}

func (s *userServiceStub) SavePushToken(ctx context.Context, userID int64, req models.SavePushTokenRequest) (commons.Response[models.SavePushTokenResponse], error) {
	return s.tokenFn(ctx, userID, req)
}

func (s *userServiceStub) UpdateProviderStatus(ctx context.Context, userID int64, req models.UpdateProviderStatusRequest) (commons.Response[models.ProfileResponse], error) {
	return s.providerFn(ctx, userID, req)
}

type orderServiceStub struct {
	createFn   func(ctx context.Context, userID int64, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error)
	listFn     func(ctx context.Context, userID int64) (commons.Response[[]models.OrderResponse], error)
	statusFn   func(ctx context.Context, orderID int64, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error)
	feedbackFn func(ctx context.Context, userID int64, req models.CreateFeedbackRequest) (commons.Response[models.FeedbackResponse], error)
}

func (s *orderServiceStub) CreateOrder(ctx context.Context, userID int64, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error) {
	return s.createFn(ctx, userID, req)
}

func (s *orderServiceStub) ListOrders(ctx context.Context, userID int64) (commons.Response[[]models.OrderResponse], error) {
	return s.listFn(ctx, userID)
}

func (s *orderServiceStub) UpdateOrderStatus(ctx context.Context, orderID int64, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error) {
	return s.statusFn(ctx, orderID, req)
}

func (s *orderServiceStub) CreateFeedback(ctx context.Context, userID int64, req models.CreateFeedbackRequest) (commons.Response[models.FeedbackResponse], error) {
	return s.feedbackFn(ctx, userID, req)
}

type catalogServiceStub struct {
	listProductsFn func(ctx context.Context, categoryID *int64) (commons.Response[[]models.ProductResponse], error)
	createReviewFn func(ctx context.Context, userID, productID int64, req models.CreateReviewRequest) (commons.Response[models.ReviewResponse], error)
	createCatFn    func(ctx context.Context, req models.CreateProductCategoryRequest) (commons.Response[models.ProductCategoryResponse], error)
}

func (s *catalogServiceStub) ListServices(context.Context) (commons.Response[[]models.ServiceResponse], error) {
	return commons.SuccessResponse("services retrieved successfully", []models.ServiceResponse{}), nil
}

func (s *catalogServiceStub) CreateService(context.Context, models.CreateServiceRequest) (commons.Response[models.ServiceResponse], error) {
	return commons.SuccessResponse("service created successfully", models.ServiceResponse{}), nil
}

func (s *catalogServiceStub) CreateCategory(ctx context.Context, req models.CreateProductCategoryRequest) (commons.Response[models.ProductCategoryResponse], error) {
	return s.createCatFn(ctx, req)
}

func (s *catalogServiceStub) CreateProduct(context.Context, models.CreateProductRequest) (commons.Response[models.ProductResponse], error) {
	return commons.SuccessResponse("product created successfully", models.ProductResponse{}), nil
}

func (s *catalogServiceStub) ListProducts(ctx context.Context, categoryID *int64) (commons.Response[[]models.ProductResponse], error) {
	return s.listProductsFn(ctx, categoryID)
}

func (s *catalogServiceStub) CreateReview(ctx context.Context, userID, productID int64, req models.CreateReviewRequest) (commons.Response[models.ReviewResponse], error) {
	return s.createReviewFn(ctx, userID, productID, req)
}

func (s *catalogServiceStub) ListReviews(context.Context, int64) (commons.Response[[]models.ReviewResponse], error) {
	return commons.SuccessResponse("reviews retrieved successfully", []models.ReviewResponse{}), nil
}

type supportServiceStub struct {
	replyFn func(ctx context.Context, messageID int64, req models.ReplySupportMessageRequest) (commons.Response[models.SupportMessageResponse], error)
}

func (s *supportServiceStub) CreateMessage(_ context.Context, userID int64, req models.CreateSupportMessageRequest) (commons.Response[models.SupportMessageResponse], error) {
	return commons.SuccessResponse("support message sent successfully", models.SupportMessageResponse{UserID: userID, Message: req.Message}), nil
}

func (s *supportServiceStub) ListMessages(context.Context, int64) (commons.Response[[]models.SupportMessageResponse], error) {
	return commons.SuccessResponse("support messages retrieved successfully", []models.SupportMessageResponse{}), nil
}

func (s *supportServiceStub) ReplyMessage(ctx context.Context, messageID int64, req models.ReplySupportMessageRequest) (commons.Response[models.SupportMessageResponse], error) {
	return s.replyFn(ctx, messageID, req)
}

func serve(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUserControllerRegister(t *testing.T) {
	svc := &userServiceStub{
		registerFn: func(_ context.Context, req models.RegisterRequest) (commons.Response[models.RegisterResponse], error) {
			if req.Username == "taken" {
				return commons.ErrorResponse[models.RegisterResponse]("Username already exists"), commons.ErrDuplicate
			}
			return commons.SuccessResponse("user registered successfully", models.RegisterResponse{ID: 1, Username: req.Username}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewUserController(svc).RegisterRoutes(r, fakeUserAuth, nil)

	body := `{"username":"%s","email":"ada@example.com","password":"s3cretpass","phone_number":"+2348000000000","gender":"female"}`

	rec := serve(t, r, http.MethodPost, "/register", strings.Replace(body, "%s", "ada", 1))
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/register", strings.Replace(body, "%s", "taken", 1))
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/register", `{"username":"ada"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation failed", decodeEnvelope(t, rec)["message"])

	rec = serve(t, r, http.MethodPost, "/register", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeEnvelope(t, rec)["message"])
}

func TestUserControllerProfileUsesCaller(t *testing.T) {
	svc := &userServiceStub{
		profileFn: func(_ context.Context, userID int64) (commons.Response[models.ProfileResponse], error) {
			require.Equal(t, int64(7), userID)
			return commons.ErrorResponse[models.ProfileResponse]("Profile not found"), commons.ErrRecordNotFound
		},
		tokenFn: func(_ context.Context, userID int64, req models.SavePushTokenRequest) (commons.Response[models.SavePushTokenResponse], error) {
			require.Equal(t, int64(7), userID)
			return commons.SuccessResponse("push token saved successfully", models.SavePushTokenResponse{Saved: true}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewUserController(svc).RegisterRoutes(r, fakeUserAuth, nil)

	rec := serve(t, r, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, r, http.MethodPost, "/save-token", `{"expo_push_token":"ExponentPushToken[abc]"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/save-token", `{"expo_push_token":"`+strings.Repeat("x", 256)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation failed", decodeEnvelope(t, rec)["message"])
}

func TestUserControllerRequiresCaller(t *testing.T) {
	r := chi.NewRouter()
	controller.NewUserController(&userServiceStub{}).RegisterRoutes(r, nil, nil)

	rec := serve(t, r, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserControllerUpdateProviderStatus(t *testing.T) {
	svc := &userServiceStub{
		providerFn: func(_ context.Context, userID int64, req models.UpdateProviderStatusRequest) (commons.Response[models.ProfileResponse], error) {
			if userID == 404 {
				return commons.NotFound[models.ProfileResponse]("Profile"), commons.ErrRecordNotFound
			}
			require.NotNil(t, req.IsApprovedProvider)
			return commons.SuccessResponse("provider status updated successfully", models.ProfileResponse{
				UserID:             userID,
				IsServiceProvider:  true,
				IsApprovedProvider: *req.IsApprovedProvider,
			}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewUserController(svc).RegisterRoutes(r, fakeUserAuth, allowAdmin)

	rec := serve(t, r, http.MethodPatch, "/admin/profiles/12/provider", `{"is_approved_provider":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 12, data["user_id"])
	assert.Equal(t, true, data["is_approved_provider"])

	rec = serve(t, r, http.MethodPatch, "/admin/profiles/404/provider", `{"is_approved_provider":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, r, http.MethodPatch, "/admin/profiles/12/provider", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, r, http.MethodPatch, "/admin/profiles/x/provider", `{"is_approved_provider":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderControllerBook(t *testing.T) {
	calls := 0
	svc := &orderServiceStub{
		createFn: func(_ context.Context, userID int64, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error) {
			calls++
			if req.ServiceID == 404 {
				return commons.ErrorResponse[models.OrderResponse]("Service not found"), commons.ErrRecordNotFound
			}
			return commons.SuccessResponse("order created successfully", models.OrderResponse{ID: 1, ServiceID: req.ServiceID, Status: "pending"}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewOrderController(svc).RegisterRoutes(r, fakeUserAuth, nil)

	future := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	rec := serve(t, r, http.MethodPost, "/book", `{"service_id":3,"appointment_time":"`+future+`"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/book", `{"service_id":404,"appointment_time":"`+future+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	rec = serve(t, r, http.MethodPost, "/book", `{"service_id":3,"appointment_time":"`+past+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, calls)
}

func TestOrderControllerUpdateStatus(t *testing.T) {
	svc := &orderServiceStub{
		statusFn: func(_ context.Context, orderID int64, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error) {
			return commons.SuccessResponse("order status updated successfully", models.OrderResponse{ID: orderID, Status: req.Status}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewOrderController(svc).RegisterRoutes(r, fakeUserAuth, allowAdmin)

	rec := serve(t, r, http.MethodPatch, "/admin/orders/12/status", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.EqualValues(t, 12, data["id"])

	rec = serve(t, r, http.MethodPatch, "/admin/orders/abc/status", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, r, http.MethodPatch, "/admin/orders/12/status", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogControllerListProductsFilter(t *testing.T) {
	var got *int64
	svc := &catalogServiceStub{
		listProductsFn: func(_ context.Context, categoryID *int64) (commons.Response[[]models.ProductResponse], error) {
			got = categoryID
			return commons.SuccessResponse("products retrieved successfully", []models.ProductResponse{}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewCatalogController(svc).RegisterRoutes(r, fakeUserAuth, nil)

	rec := serve(t, r, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)

	rec = serve(t, r, http.MethodGet, "/products?category=4", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), *got)

	rec = serve(t, r, http.MethodGet, "/products?category=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogControllerReviewsAndAdmin(t *testing.T) {
	svc := &catalogServiceStub{
		createReviewFn: func(_ context.Context, userID, productID int64, req models.CreateReviewRequest) (commons.Response[models.ReviewResponse], error) {
			require.Equal(t, int64(7), userID)
			require.Equal(t, int64(9), productID)
			return commons.ErrorResponse[models.ReviewResponse]("Review already exists"), commons.ErrDuplicate
		},
		createCatFn: func(_ context.Context, req models.CreateProductCategoryRequest) (commons.Response[models.ProductCategoryResponse], error) {
			return commons.SuccessResponse("category created successfully", models.ProductCategoryResponse{ID: 1, Name: req.Name}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewCatalogController(svc).RegisterRoutes(r, fakeUserAuth, allowAdmin)

	rec := serve(t, r, http.MethodPost, "/products/9/reviews", `{"rating":5,"comment":"great"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, r, http.MethodPost, "/products/9/reviews", `{"rating":6}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, r, http.MethodPost, "/admin/product-categories", `{"name":"Hair care"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSupportControllerReply(t *testing.T) {
	svc := &supportServiceStub{
		replyFn: func(_ context.Context, messageID int64, req models.ReplySupportMessageRequest) (commons.Response[models.SupportMessageResponse], error) {
			if messageID == 99 {
				return commons.ErrorResponse[models.SupportMessageResponse]("Support message not found"), commons.ErrRecordNotFound
			}
			parent := messageID
			return commons.SuccessResponse("reply sent successfully", models.SupportMessageResponse{ID: 2, IsFromAdmin: true, ResponseTo: &parent, Message: req.Message}), nil
		},
	}
	r := chi.NewRouter()
	controller.NewSupportController(svc).RegisterRoutes(r, fakeUserAuth, allowAdmin)

	rec := serve(t, r, http.MethodPost, "/admin/support-messages/1/reply", `{"message":"We are on it"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	assert.Equal(t, true, data["is_from_admin"])
	assert.EqualValues(t, 1, data["response_to"])

	rec = serve(t, r, http.MethodPost, "/admin/support-messages/99/reply", `{"message":"hello"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, r, http.MethodPost, "/support-messages", `{"message":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, r, http.MethodPost, "/support-messages", `{"message":"My booking is late"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminRoutesRefuseWithoutAdminAuth(t *testing.T) {
	called := false
	orders := &orderServiceStub{
		statusFn: func(context.Context, int64, models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error) {
			called = true
			return commons.SuccessResponse("order status updated successfully", models.OrderResponse{}), nil
		},
	}
	support := &supportServiceStub{
		replyFn: func(context.Context, int64, models.ReplySupportMessageRequest) (commons.Response[models.SupportMessageResponse], error) {
			called = true
			return commons.SuccessResponse("reply sent successfully", models.SupportMessageResponse{}), nil
		},
	}
	catalog := &catalogServiceStub{
		createCatFn: func(context.Context, models.CreateProductCategoryRequest) (commons.Response[models.ProductCategoryResponse], error) {
			called = true
			return commons.SuccessResponse("category created successfully", models.ProductCategoryResponse{}), nil
		},
	}
	users := &userServiceStub{
		providerFn: func(context.Context, int64, models.UpdateProviderStatusRequest) (commons.Response[models.ProfileResponse], error) {
			called = true
			return commons.SuccessResponse("provider status updated successfully", models.ProfileResponse{}), nil
		},
	}

	r := chi.NewRouter()
	controller.NewOrderController(orders).RegisterRoutes(r, fakeUserAuth, nil)
	controller.NewSupportController(support).RegisterRoutes(r, fakeUserAuth, nil)
	controller.NewCatalogController(catalog).RegisterRoutes(r, fakeUserAuth, nil)
	controller.NewUserController(users).RegisterRoutes(r, fakeUserAuth, nil)

	requests := []struct{ method, target, body string }{
		{http.MethodPatch, "/admin/orders/12/status", `{"status":"confirmed"}`},
		{http.MethodPost, "/admin/support-messages/1/reply", `{"message":"hi"}`},
		{http.MethodPost, "/admin/product-categories", `{"name":"Hair care"}`},
		{http.MethodPatch, "/admin/profiles/7/provider", `{"is_approved_provider":true}`},
	}
	for _, tc := range requests {
		rec := serve(t, r, tc.method, tc.target, tc.body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.target)
		assert.Equal(t, "unauthorized", decodeEnvelope(t, rec)["message"], tc.target)
	}
	assert.False(t, called)
}
