// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/hireflow/internal/pipeline"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// principalKey is the context key for the authenticated principal.
const principalKey ContextKey = "principal"

// TokenValidator validates a bearer access token and yields the
// authenticated principal. This lets the middleware work with any JWT
// service implementation.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (pipeline.Principal, error)
}

// Auth creates middleware that requires a valid bearer access token and
// adds the authenticated principal to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Case-insensitive "Bearer" prefix
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			principal, err := validator.ValidateAccessToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPrincipal extracts the authenticated principal from the request
// context.
func GetPrincipal(r *http.Request) (pipeline.Principal, error) {
	principal, ok := r.Context().Value(principalKey).(pipeline.Principal)
	if !ok {
		return pipeline.Principal{}, fmt.Errorf("principal not found in request context")
	}
	return principal, nil
}

// WithPrincipal returns a context carrying the principal (for tests).
func WithPrincipal(ctx context.Context, principal pipeline.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}
