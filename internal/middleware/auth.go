package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=middleware_test

const mcpSecretHeader = "X-MCP-Secret"

type loginChecker interface {
	LoggedUser(ctx context.Context, token string) (int, error)
}

// AuthMiddlewareHandler resolves the session token to a user id and puts it in
// the request context. The /mcp endpoint is guarded by a shared secret instead.
type AuthMiddlewareHandler struct {
	mcpSecret    string
	loginChecker loginChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(
	mcpSecret string,
	loginChecker loginChecker,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		mcpSecret:    mcpSecret,
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			"/": true,

			// users handler:
			"/register": true,
			"/login":    true,
			"/logout":   true,

			// catalog:
			"/exercises":       true,
			"/stats/exercises": true,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	// single exercise is public, its record is not
	if strings.HasPrefix(path, "/exercises/") && !strings.HasSuffix(path, "/record") {
		return true
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if strings.HasPrefix(r.URL.Path, "/mcp") {
				secret := r.Header.Get(mcpSecretHeader)
				if h.mcpSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.mcpSecret)) != 1 {
					reqIP, _ := pkg.ReadUserIP(r)
					log.Warnf("unauthorized /mcp request from %s", reqIP)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "mcp-secret-mismatch")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := auth.TokenFromRequest(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.loginChecker.LoggedUser(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNotLoggedIn) || errors.Is(err, auth.ErrSessionExpired) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			span.SetAttributes(attribute.Int("user.id", userID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
