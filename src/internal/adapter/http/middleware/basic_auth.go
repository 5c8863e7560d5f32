package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/api-sage/booking-marketplace/src/internal/commons"
	"github.com/api-sage/booking-marketplace/src/internal/logger"
)

const authRealm = `Basic realm="marketplace", charset="UTF-8"`

// ChannelAuth guards the admin surface with the shared channel id and key.
// An unconfigured id or key fails closed with 500.
func ChannelAuth(channelID, channelKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if channelID == "" || channelKey == "" {
				logger.Error("channel auth missing CHANNEL_ID or CHANNEL_KEY", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				writeAuthError(w, http.StatusInternalServerError, "admin authentication is not configured")
				return
			}

			id, key, ok := r.BasicAuth()
			if !ok {
				logger.Info("channel auth missing credentials", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				challenge(w)
				return
			}
			// Both halves are always compared to keep timing uniform.
			idOK := secureEqual(id, channelID)
			keyOK := secureEqual(key, channelKey)
			if !idOK || !keyOK {
				logger.Warn("channel auth rejected admin credentials", logger.Fields{
					"method":    r.Method,
					"path":      r.URL.Path,
					"channelId": id,
				})
				challenge(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// challenge answers 401 with a Basic challenge so clients retry with credentials.
func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", authRealm)
	writeAuthError(w, http.StatusUnauthorized, "valid basic credentials are required")
}

func writeAuthError(w http.ResponseWriter, status int, detail string) {
	message := commons.MessageUnauthorized
	if status != http.StatusUnauthorized {
		message = "authentication unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(commons.ErrorResponse[struct{}](message, detail))
}
