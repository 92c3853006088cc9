package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/flickerrrrrz/iprawnik/internal/domain"
	"github.com/flickerrrrrz/iprawnik/internal/tenancy"
	"github.com/flickerrrrrz/iprawnik/pkg/util"
)

// Auth is a middleware factory that returns a new authentication middleware.
// It validates the bearer token and attaches the verified principal to the
// request context. A missing or invalid token does not reject the request
// here: the session resolver reports no principal and the tenancy layer
// answers with its unauthenticated error, so public routes stay usable
// behind the same middleware.
func Auth(jwtSecret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := util.ValidateToken(token, jwtSecret)
			if err != nil {
				logger.Warn("rejected bearer token", "remote_addr", r.RemoteAddr, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			principal := &domain.Principal{ID: claims.UserID, Email: claims.Email}
			ctx := tenancy.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
