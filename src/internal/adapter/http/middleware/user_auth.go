package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/domain"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
)

type contextKey string

const userIDKey contextKey = "userID"

type Authenticator interface {
	Authenticate(ctx context.Context, username string, password string) (domain.User, error)
}

// UserAuth resolves HTTP Basic credentials to a registered user and stores
// the user id on the request context.
func UserAuth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				logger.Info("user auth middleware missing credentials", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				challenge(w)
				return
			}

			user, err := authenticator.Authenticate(r.Context(), username, password)
			if err != nil {
				if errors.Is(err, commons.ErrInvalidCredentials) {
					logger.Info("user auth middleware invalid credentials", logger.Fields{
						"method":   r.Method,
						"path":     r.URL.Path,
						"username": username,
					})
					challenge(w)
					return
				}
				logger.Error("user auth middleware authentication failed", err, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				writeAuthError(w, http.StatusInternalServerError, "unable to authenticate right now")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), user.ID)))
		})
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
