package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
)

// RequirePermission checks if the session has a specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := auth.SessionFromContext(r.Context())
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !sess.HasPermission(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, sess.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAnyPermission passes when the session holds at least one of permissions
func RequireAnyPermission(permissions ...user.Permission) func(http.Handler) http.Handler {
	names := make([]string, len(permissions))
	for i, p := range permissions {
		names[i] = string(p)
	}
	required := strings.Join(names, "' or '")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ := auth.SessionFromContext(r.Context())
			for _, p := range permissions {
				if sess.HasPermission(p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", required))
		})
	}
}
