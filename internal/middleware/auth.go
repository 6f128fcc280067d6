package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shopwell/storefront/pkg/auth"
	"github.com/shopwell/storefront/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// UserID extracts the authenticated user id from the request context.
func UserID(r *http.Request) uint {
	id, _ := r.Context().Value(UserIDKey).(uint)
	return id
}

// Role extracts the authenticated role from the request context.
func Role(r *http.Request) string {
	role, _ := r.Context().Value(RoleKey).(string)
	return role
}

// extractToken pulls the JWT from the Authorization header or the
// x-auth-token header the web client sends.
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return r.Header.Get("x-auth-token")
}

// AuthMiddleware validates the JWT and stores the caller's identity in
// the request context.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Invalid token")
			respondError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware checks that the authenticated caller is an admin.
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if Role(r) != auth.RoleAdmin {
			logger.Logger.Warn().
				Str("role", Role(r)).
				Str("path", r.URL.Path).
				Msg("Admin access denied")
			respondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
