package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tasktrack/api/internal/api/shared"
	"github.com/tasktrack/api/internal/redact"
	"github.com/tasktrack/api/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates session tokens from the Authorization header and
// adds the owner's user ID to the request context for authorized requests.
//
// A missing or malformed header is 401 (the caller never presented a
// credential); a token that fails verification is 403 (the caller presented
// one and it was rejected). The two outcomes stay distinguishable so clients
// can tell "log in first" apart from "get a new token".
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Access Denied!")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Access Denied!")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken), errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusForbidden, "Invalid Token!")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
