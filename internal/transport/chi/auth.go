package chi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/domain"
)

// DefaultOwner is the identity of every request when authentication is disabled.
const DefaultOwner = "local"

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// TokenResolver maps a personal access token to its owner. Unknown tokens
// yield domain.ErrUnauthorized.
type TokenResolver interface {
	Resolve(ctx context.Context, plaintext string) (string, error)
}

type ownerKey struct{}

// ContextWithOwner stores the authenticated owner in the context.
func ContextWithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

// OwnerFromContext returns the authenticated owner, or "" if none.
func OwnerFromContext(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey{}).(string)
	return owner
}

// BearerAuthMiddleware returns a middleware that resolves the Bearer token to
// an owner: first against the static keys, then against stored personal
// access tokens. With no static keys and no resolver, authentication is
// disabled and every request acts as DefaultOwner.
func BearerAuthMiddleware(keys map[string]string, tokens TokenResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	static := make(map[string]string, len(keys))
	for k, owner := range keys {
		if k != "" && owner != "" {
			static[k] = owner
		}
	}

	return func(next http.Handler) http.Handler {
		// Auth disabled: pass everything through
		if len(static) == 0 && tokens == nil {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(ContextWithOwner(r.Context(), DefaultOwner)))
			})
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(auth, bearerPrefix) {
				writeError(w, http.StatusUnauthorized,
					ErrorCodeUnauthorized, "authorization header must use Bearer scheme")
				return
			}
			token := strings.TrimSpace(auth[len(bearerPrefix):])

			owner, ok := static[token]
			if !ok && tokens != nil {
				var err error
				owner, err = tokens.Resolve(r.Context(), token)
				switch {
				case errors.Is(err, domain.ErrUnauthorized):
				case err != nil:
					logger.Error("Token lookup failed", zap.Error(err))
					writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
					return
				default:
					ok = true
				}
			}
			if !ok {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithOwner(r.Context(), owner)))
		})
	}
}
