package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/norsk-drill/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

type tokenValidator interface {
	ValidateAdminToken(token string) error
}

// AdminPolicy decides which requests get admin access without a token.
type AdminPolicy struct {
	// PersonalMode grants admin to every request that passes LocalhostOnly.
	PersonalMode bool
	// LocalhostOnly limits personal mode to loopback peers.
	LocalhostOnly bool
}

// allows reports whether personal mode admits r.
func (p AdminPolicy) allows(r *http.Request) bool {
	if !p.PersonalMode {
		return false
	}
	if !p.LocalhostOnly {
		return true
	}
	ip := net.ParseIP(clientIP(r))
	return ip != nil && ip.IsLoopback()
}

// AdminAccess marks the request context as admin when it carries a valid
// bearer token or when the policy admits it. A bearer token that fails
// validation is rejected with 401 even if personal mode would admit the
// request. tokens may be nil when password login is disabled.
// The middleware never rejects a request without a token; pair it with
// RequireAdmin on admin routes.
func AdminAccess(policy AdminPolicy, tokens tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token, ok := bearerToken(r); ok {
				if tokens == nil {
					writeError(w, http.StatusUnauthorized, "Token login is disabled")
					return
				}
				if err := tokens.ValidateAdminToken(token); err != nil {
					logger.WarnContext(ctx, "admin token rejected",
						slog.String("path", r.URL.Path),
						slog.String("error", err.Error()),
					)
					writeError(w, http.StatusUnauthorized, "Invalid or expired token")
					return
				}
				noteAdmin(w, ctxutil.AdminViaToken)
				next.ServeHTTP(w, r.WithContext(ctxutil.WithAdmin(ctx, ctxutil.AdminViaToken)))
				return
			}

			if policy.allows(r) {
				noteAdmin(w, ctxutil.AdminViaPersonal)
				ctx = ctxutil.WithAdmin(ctx, ctxutil.AdminViaPersonal)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose context carries no admin access.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdmin(r.Context()) {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// ok is false when no bearer credential is present.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
