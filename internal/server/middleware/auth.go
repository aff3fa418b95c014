// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonathan/hr-copilot/internal/types"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const userKey ContextKey = "user"

// TokenValidator validates a bearer token. The indirection lets the
// middleware work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (UserGetter, error)
}

// UserGetter extracts the user context from token claims.
type UserGetter interface {
	GetUser() types.UserContext
}

// Auth resolves the caller's identity from the Authorization header and
// stores it in the request context. Requests without a valid bearer token
// proceed as guest rather than being rejected; role enforcement happens
// downstream per action.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := resolveUser(r, validator)
			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveUser(r *http.Request, validator TokenValidator) types.UserContext {
	guest := types.UserContext{}.Normalize()

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return guest
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return guest
	}

	claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return guest
	}

	return claims.GetUser().Normalize()
}

// GetUser extracts the resolved user from the request context. Requests that
// never passed through Auth resolve to guest.
func GetUser(r *http.Request) types.UserContext {
	user, ok := r.Context().Value(userKey).(types.UserContext)
	if !ok {
		return types.UserContext{}.Normalize()
	}
	return user
}
