// internal/identity/middleware.go
// Mock identity for the trusted client: the caller's user ID arrives in
// the X-User-ID header. There is no credential verification here; the
// real authentication flow lives outside this service.

package identity

import (
	"context"
	"net/http"

	"github.com/anisapp/anis-server/internal/common/utils"
)

type contextKey string

const userIDKey contextKey = "userID"

// Middleware extracts the caller identity from request headers.
type Middleware struct{}

// NewMiddleware creates the identity middleware.
func NewMiddleware() *Middleware {
	return &Middleware{}
}

// Authenticate requires an X-User-ID header and stores it in the request
// context for downstream handlers.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Missing X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the caller's user ID, if present.
func FromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// MustFromContext returns the caller's user ID. It is only safe behind
// the Authenticate middleware.
func MustFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
