package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/middleware"
	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	"github.com/go-chi/chi"
)

const maxJSONBodyBytes = 1 << 20

var errMissingUser = errors.New("authenticated user missing from request context")

type validator interface {
	Validate() error
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFromMessage maps service response messages onto HTTP status codes.
func statusFromMessage(message string) int {
	switch {
	case message == commons.MessageValidationFailed, message == commons.MessageInvalidWebhook, message == commons.MessageInvalidRequestBody:
		return http.StatusBadRequest
	case strings.HasSuffix(message, "not found"):
		return http.StatusNotFound
	case strings.HasSuffix(message, "already exists"):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a service result, logging failures the way every handler does.
func respond[T any](w http.ResponseWriter, r *http.Request, start time.Time, successStatus int, response commons.Response[T], err error) {
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		status := statusFromMessage(response.Message)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, successStatus, response)
	logResponse(r, successStatus, response, start)
}

// fail writes an error envelope without calling the service.
func fail[T any](w http.ResponseWriter, r *http.Request, start time.Time, status int, err error, message string, details ...string) {
	logError(r, err, nil)
	response := commons.ErrorResponse[T](message, details...)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

// decodeJSON reads and validates a request body. It writes the error
// response itself and reports false when the handler should stop.
func decodeJSON[Req validator, T any](w http.ResponseWriter, r *http.Request, start time.Time) (Req, bool) {
	var req Req

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		fail[T](w, r, start, http.StatusBadRequest, err, commons.MessageInvalidRequestBody, err.Error())
		return req, false
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		fail[T](w, r, start, http.StatusBadRequest, err, commons.MessageValidationFailed, err.Error())
		return req, false
	}

	return req, true
}

func pathID[T any](w http.ResponseWriter, r *http.Request, start time.Time, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errors.New("id must be greater than zero")
		}
		fail[T](w, r, start, http.StatusBadRequest, err, commons.MessageValidationFailed, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func callerID[T any](w http.ResponseWriter, r *http.Request, start time.Time) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		fail[T](w, r, start, http.StatusUnauthorized, errMissingUser, commons.MessageUnauthorized)
		return 0, false
	}
	return userID, true
}

func passthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}

var errAdminAuthMissing = errors.New("admin authentication is not configured")

// adminOnly guards the admin surface. A nil middleware refuses every request.
func adminOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fail[struct{}](w, r, time.Now(), http.StatusUnauthorized, errAdminAuthMissing, commons.MessageUnauthorized)
		})
	}
}
