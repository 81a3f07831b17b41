package auth

import (
	"context"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/user"
)

// Session is the signed-in identity for one login. It is created by Login,
// looked up on every authenticated request and deleted by Logout.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      user.Role `json:"role"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HasPermission reports whether the session's role grants permission.
// The zero Session holds nothing.
func (s Session) HasPermission(permission user.Permission) bool {
	if s.UserID == "" {
		return false
	}
	return user.HasPermission(s.Role, permission)
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStore persists sessions between requests.
type SessionStore interface {
	Create(ctx context.Context, sess Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionKey struct{}

// WithSession attaches the session to a request context.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session set by the auth middleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(Session)
	return sess, ok
}

// Session events published to the session stream.
const (
	EventSignedIn  = "SIGNED_IN"
	EventSignedOut = "SIGNED_OUT"
)
