package api

import (
	"net/http"
	"strings"

	"github.com/shelfmarkapp/shelfmark-server/internal/http/response"
)

// requireAuth validates the bearer token on every request it wraps.
// A missing or malformed header is 401; a token that fails verification
// (bad signature, expired) is 403.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Access denied. No token provided.", s.logger)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Access denied. No token provided.", s.logger)
			return
		}

		if err := s.tokens.Verify(parts[1]); err != nil {
			response.Forbidden(w, "Invalid token.", s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// secureHeaders sets baseline security response headers on every request.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")

		next.ServeHTTP(w, r)
	})
}
