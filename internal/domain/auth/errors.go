package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrSessionNotFound      = errors.New("session not found or expired")
	ErrUserNotFound         = errors.New("user not found")
	ErrResetTokenInvalid    = errors.New("password reset link is invalid or has expired")
	ErrGoogleSignInDisabled = errors.New("google sign-in is not configured")
)

// OAuth callback errors
var (
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
	ErrStateCookieEmpty         = errors.New("state cookie is empty")
	ErrStateParamEmpty          = errors.New("state parameter is empty")
	ErrStateMismatch            = errors.New("state mismatch")
	ErrCodeValueEmpty           = errors.New("code value is empty")
)
