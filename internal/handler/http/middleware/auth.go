package middleware

import (
	"context"
	"net/http"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// SessionResolver looks up the session an access token points to.
type SessionResolver interface {
	Authenticate(ctx context.Context, sessionID string) (auth.Session, error)
}

// AuthRequired rejects requests without a verified access token whose
// session still exists, and attaches the session to the request context.
// It expects jwtauth.Verifier to run first.
func AuthRequired(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			sess, err := resolveSession(r.Context(), resolver, token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		}
		return http.HandlerFunc(hfn)
	}
}

func resolveSession(ctx context.Context, resolver SessionResolver, token jwt.Token) (auth.Session, error) {
	if token == nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if tokenType != "access" || !ok {
		return auth.Session{}, auth.ErrInvalidToken
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	return resolver.Authenticate(ctx, sessionID)
}
