package middleware

import (
	"context"
	"net/http"
	"strings"

	"cartify-server/internal/domain"
)

type contextKey string

const userKey contextKey = "user"

// JWT resolves the bearer token into a full user via the auth service and
// stores it in the request context. Verification failures of any kind
// surface uniformly as 401.
func JWT(svc domain.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized: no token found")
				return
			}

			user := svc.UserFromToken(r.Context(), token)
			if user == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized: invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}
