package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the id put there by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int)
	return userID, ok
}

// TokenFromRequest reads the Authorization header. "Token <t>", "Bearer <t>"
// and a bare token are accepted.
func TokenFromRequest(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	for _, scheme := range []string{"Token ", "Bearer "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return header
}
