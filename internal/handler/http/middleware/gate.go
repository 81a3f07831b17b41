package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

const loginPath = "/login"

var publicPaths = []string{loginPath, "/forgot-password", "/reset-password", "/assets", "/favicon.ico"}

// Gate guards the non-API pages. Public pages pass untouched; everything
// else needs a live session or is redirected to the login page with the
// original path in "from".
func Gate(ja *jwtauth.JWTAuth, resolver SessionResolver, contentSecurityPolicy string) func(http.Handler) http.Handler {
	secure := SecurityHeaders(contentSecurityPolicy)

	return func(next http.Handler) http.Handler {
		protected := secure(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := jwtauth.VerifyRequest(ja, r, jwtauth.TokenFromCookie, jwtauth.TokenFromHeader)
			if err == nil {
				if sess, err := resolveSession(r.Context(), resolver, token); err == nil {
					protected.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
					return
				}
			}

			target := loginPath + "?from=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
