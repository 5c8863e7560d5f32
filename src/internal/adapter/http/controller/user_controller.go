package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/models"
	"github.com/api-sage/booking-marketplace/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi"
)

type UserController struct {
	service service_interfaces.UserService
}

func NewUserController(service service_interfaces.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) RegisterRoutes(r chi.Router, userAuth, adminAuth func(http.Handler) http.Handler) {
	r.Post("/register", c.register)

	r.Group(func(r chi.Router) {
		r.Use(passthrough(userAuth))
		r.Get("/profile", c.getProfile)
		r.Put("/profile", c.updateProfile)
		r.Post("/save-token", c.savePushToken)
	})

	r.With(adminOnly(adminAuth)).Patch("/admin/profiles/{user_id}/provider", c.updateProviderStatus)
}

func (c *UserController) register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := decodeJSON[models.RegisterRequest, models.RegisterResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Register(r.Context(), req)
	respond(w, r, start, http.StatusCreated, response, err)
}

func (c *UserController) getProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.ProfileResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.GetProfile(r.Context(), userID)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *UserController) updateProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.ProfileResponse](w, r, start)
	if !ok {
		return
	}
	req, ok := decodeJSON[models.UpdateProfileRequest, models.ProfileResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.UpdateProfile(r.Context(), userID, req)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *UserController) savePushToken(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := callerID[models.SavePushTokenResponse](w, r, start)
	if !ok {
		return
	}
	req, ok := decodeJSON[models.SavePushTokenRequest, models.SavePushTokenResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.SavePushToken(r.Context(), userID, req)
	respond(w, r, start, http.StatusOK, response, err)
}

func (c *UserController) updateProviderStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	userID, ok := pathID[models.ProfileResponse](w, r, start, "user_id")
	if !ok {
		return
	}
	req, ok := decodeJSON[models.UpdateProviderStatusRequest, models.ProfileResponse](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.UpdateProviderStatus(r.Context(), userID, req)
	respond(w, r, start, http.StatusOK, response, err)
}
