package auth

import (
	"context"

	"github.com/gastrodesk/backoffice-api/internal/domain/user"
)

type AuthService interface {
	// Login checks credentials and opens a new session
	Login(ctx context.Context, req LoginRequest, tracking SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle opens a session for an existing user matched by Google email
	LoginWithGoogle(ctx context.Context, email string, googleID string, tracking SessionTrackingRequest) (TokenResponse, error)

	// Logout closes the session
	Logout(ctx context.Context, sess Session) error

	// Authenticate resolves the session referenced by an access token
	Authenticate(ctx context.Context, sessionID string) (Session, error)

	// Me returns the profile of the signed-in user with its permissions
	Me(ctx context.Context, sess Session) (user.UserResponse, error)

	// ForgotPassword emails a reset link if the address belongs to a user
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error

	// ResetPassword consumes a reset token and stores the new password
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

// PasswordReset is a one-time reset token stored by its SHA-256 hash.
type PasswordReset struct {
	TokenHash string
	UserID    string
}

type PasswordResetRepository interface {
	Create(ctx context.Context, userID, tokenHash string, ttlMinutes int) error
	// Consume marks a live token as used and returns its owner.
	Consume(ctx context.Context, tokenHash string) (PasswordReset, error)
	// DeleteExpired removes used and expired tokens.
	DeleteExpired(ctx context.Context) (int64, error)
}
