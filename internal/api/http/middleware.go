package http

import (
	"net/http"
	"strings"
	"time"

	"fleetdesk-backend/internal/domain"
	"fleetdesk-backend/internal/logger"
	"fleetdesk-backend/internal/security"
)

// authMiddleware validates the bearer token and injects the request
// scope. Handlers never read identity from anywhere else.
func authMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, domain.ErrUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeError(w, domain.ErrUnauthorized)
				return
			}

			scope := domain.Scope{
				UserID: claims.UserID,
				OrgID:  claims.OrgID,
				Role:   claims.Role,
			}
			next.ServeHTTP(w, r.WithContext(withScope(r.Context(), scope)))
		})
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
