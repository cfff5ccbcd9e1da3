// Package auth provides request authentication for the admin API.
//
// The admin surface uses a single static API key carried as a bearer token:
// "Authorization: Bearer <api-key>". Public read endpoints and the public
// submission endpoints (contact, newsletter) skip this middleware entirely.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
)

// APIKeyAuth returns middleware that validates API key authentication.
//
// If the API key is invalid or missing, returns 401 Unauthorized.
// If the API key is not configured (empty), logs a warning and rejects all
// requests on the protected surface.
func APIKeyAuth(validKey string, logger *zap.Logger) func(http.Handler) http.Handler {
	if validKey == "" {
		logger.Warn("API key not configured - all admin API requests will be rejected")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validKey == "" {
				logger.Warn("admin request rejected: API key not configured",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				jsonutil.Error(w, http.StatusUnauthorized, "API authentication not configured")
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("admin request rejected: missing Authorization header",
					zap.String("path", r.URL.Path),
				)
				jsonutil.Error(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Debug("admin request rejected: invalid Authorization format",
					zap.String("path", r.URL.Path),
				)
				jsonutil.Error(w, http.StatusUnauthorized, "invalid Authorization format (expected: Bearer <api-key>)")
				return
			}

			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(validKey)) != 1 {
				logger.Warn("admin request rejected: invalid API key",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				jsonutil.Error(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
