package controller

import (
	"net/http"
	"time"

	"github.com/api-sage/booking-marketplace/src/internal/adapter/http/middleware"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
	chimiddleware "github.com/go-chi/chi/middleware"
)

// requestFields identifies a request across its log lines. The caller id is
// present only on authenticated routes.
func requestFields(r *http.Request) logger.Fields {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if requestID := chimiddleware.GetReqID(r.Context()); requestID != "" {
		fields["requestId"] = requestID
	}
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		fields["userId"] = userID
	}
	return fields
}

// logRequest runs once with a nil payload on entry and again after decoding.
func logRequest(r *http.Request, payload any) {
	fields := requestFields(r)
	if payload == nil {
		fields["query"] = r.URL.RawQuery
		logger.Info("http request received", fields)
		return
	}
	fields["payload"] = logger.SanitizePayload(payload)
	logger.Info("http request decoded", fields)
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	fields := requestFields(r)
	fields["status"] = status
	fields["durationMs"] = time.Since(start).Milliseconds()
	if status >= http.StatusBadRequest {
		fields["response"] = logger.SanitizePayload(payload)
		logger.Warn("http response", fields)
		return
	}
	logger.Info("http response", fields)
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := requestFields(r)
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
