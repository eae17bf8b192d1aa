package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mariposa/wedding-rsvp/internal/http/response"
	"github.com/mariposa/wedding-rsvp/pkg/auth"
	"github.com/mariposa/wedding-rsvp/pkg/logger"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

// RequireAdmin guards the dashboard routes with the bearer token issued at
// login. Verification is in-process only and never touches the store.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				response.WriteError(w, http.StatusUnauthorized, "No token provided", response.CodeUnauthorized)
				return
			}
			if !strings.HasPrefix(authz, "Bearer ") {
				response.WriteError(w, http.StatusUnauthorized, "Invalid authorization header", response.CodeUnauthorized)
				return
			}

			raw := strings.TrimPrefix(authz, "Bearer ")
			claims, err := auth.Parse(raw, secret)
			if err != nil {
				response.WriteError(w, http.StatusUnauthorized, "Invalid token", response.CodeInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), logger.AdminIDKey, claims.Sub)
			ctx = context.WithValue(ctx, CtxClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func Claims(r *http.Request) *auth.Claims {
	v := r.Context().Value(CtxClaims)
	if v == nil {
		return nil
	}
	return v.(*auth.Claims)
}
