package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"cartify-server/internal/domain"
)

// RequireRole gates a route on the authenticated user's role. Must run
// after JWT in the chain.
func RequireRole(roles ...domain.Role) Middleware {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	message := fmt.Sprintf("You need %s access.", strings.Join(names, ", "))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized: no token found")
				return
			}

			if !domain.RoleAllowed(roles, user.Role) {
				writeError(w, http.StatusForbidden, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
