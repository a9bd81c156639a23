package middlewares

import (
	"context"
	"net/http"

	"github.com/skosovan/data-analyzer/internal/jwt"
	"github.com/skosovan/data-analyzer/internal/logger"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionChecker reports whether a session is still live.
type SessionChecker interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the authenticated claims set by AuthMiddleware.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// ContextWithClaims attaches claims to a context the way AuthMiddleware does.
func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// AuthMiddleware returns a middleware that requires a valid bearer token
// backed by a live session record. A signed but logged-out token is rejected.
func AuthMiddleware(tokener Tokener, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, err := sessions.Get(ctx, claims.ID); err != nil {
				logger.Log.Warnw("no live session for token", "session_id", claims.ID, "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
