package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/gastrodesk/backoffice-api/internal/pkg/email"
	"github.com/gastrodesk/backoffice-api/internal/pkg/jwt"
	"github.com/gastrodesk/backoffice-api/internal/repository/postgresql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenBytes   = 32
	resetTokenTTL     = 60 * time.Minute
	loginMethodPass   = "password"
	loginMethodGoogle = "google"
)

// EventPublisher pushes session events to a user's open streams.
type EventPublisher interface {
	Publish(userID, name string, data any) int
}

// LoginRecorder counts sign-in attempts.
type LoginRecorder interface {
	Login(method string, success bool)
}

// Settings are the tunables of the auth service.
type Settings struct {
	SessionTTL    time.Duration
	FrontendURL   string
	GoogleEnabled bool
}

type AuthServiceImpl struct {
	user.UserRepository
	auth.PasswordResetRepository
	sessions auth.SessionStore
	tokens   jwt.Service
	tx       postgresql.Transactor
	mailer   email.Sender
	events   EventPublisher
	recorder LoginRecorder
	settings Settings
	now      func() time.Time
}

func NewAuthService(
	userRepository user.UserRepository,
	resetRepository auth.PasswordResetRepository,
	sessions auth.SessionStore,
	tokens jwt.Service,
	tx postgresql.Transactor,
	mailer email.Sender,
	events EventPublisher,
	recorder LoginRecorder,
	settings Settings,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:          userRepository,
		PasswordResetRepository: resetRepository,
		sessions:                sessions,
		tokens:                  tokens,
		tx:                      tx,
		mailer:                  mailer,
		events:                  events,
		recorder:                recorder,
		settings:                settings,
		now:                     time.Now,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, tracking auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			a.recordLogin(loginMethodPass, false)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		a.recordLogin(loginMethodPass, false)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		a.recordLogin(loginMethodPass, false)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	resp, err := a.openSession(ctx, userData, tracking)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	a.recordLogin(loginMethodPass, true)
	return resp, nil
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, googleID string, tracking auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if !a.settings.GoogleEnabled {
		return auth.TokenResponse{}, auth.ErrGoogleSignInDisabled
	}

	userData, err := a.UserRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			a.recordLogin(loginMethodGoogle, false)
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.OAuthProviderID == nil || *userData.OAuthProviderID != googleID {
		userData, err = a.UserRepository.LinkGoogleAccount(ctx, googleID, userData.Email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	resp, err := a.openSession(ctx, userData, tracking)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	a.recordLogin(loginMethodGoogle, true)
	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, sess auth.Session) error {
	if err := a.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	a.publish(sess.UserID, auth.EventSignedOut, map[string]string{"session_id": sess.ID})
	return nil
}

// Authenticate implements auth.AuthService.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, sessionID string) (auth.Session, error) {
	if sessionID == "" {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	sess, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			return auth.Session{}, err
		}
		return auth.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if sess.Expired(a.now()) {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return sess, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, sess auth.Session) (user.UserResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user.ToResponse(userData), nil
}

// ForgotPassword implements auth.AuthService. Unknown addresses succeed
// silently so the endpoint does not reveal which accounts exist.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	token, tokenHash, err := newResetToken()
	if err != nil {
		return err
	}
	if err := a.PasswordResetRepository.Create(ctx, userData.ID, tokenHash, int(resetTokenTTL.Minutes())); err != nil {
		return fmt.Errorf("failed to store password reset: %w", err)
	}

	link := strings.TrimRight(a.settings.FrontendURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
	expiresAt := a.now().Add(resetTokenTTL)
	if err := a.mailer.SendPasswordReset(userData.Email, userData.FullName, link, expiresAt); err != nil {
		slog.Error("password reset email not delivered", "user_id", userData.ID, "error", err)
	}
	return nil
}

// ResetPassword implements auth.AuthService.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		reset, err := a.PasswordResetRepository.Consume(txCtx, hashResetToken(req.Token))
		if err != nil {
			return err
		}
		if err := a.UserRepository.UpdatePassword(txCtx, reset.UserID, string(hash)); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return nil
	})
}

func (a *AuthServiceImpl) openSession(ctx context.Context, userData user.User, tracking auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	now := a.now()
	sess := auth.Session{
		ID:        uuid.NewString(),
		UserID:    userData.ID,
		Email:     userData.Email,
		Name:      userData.DisplayName(),
		Role:      userData.Role,
		IPAddress: tracking.IPAddress,
		UserAgent: tracking.UserAgent,
		IssuedAt:  now,
		ExpiresAt: now.Add(a.settings.SessionTTL),
	}

	token, expiresAt, err := a.tokens.GenerateAccessToken(sess)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	if err := a.sessions.Create(ctx, sess); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store session: %w", err)
	}

	a.publish(sess.UserID, auth.EventSignedIn, map[string]string{
		"session_id": sess.ID,
		"ip_address": sess.IPAddress,
		"user_agent": sess.UserAgent,
	})

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		SessionID:            sess.ID,
	}, nil
}

func (a *AuthServiceImpl) publish(userID, event string, data any) {
	if a.events != nil {
		a.events.Publish(userID, event, data)
	}
}

func (a *AuthServiceImpl) recordLogin(method string, success bool) {
	if a.recorder != nil {
		a.recorder.Login(method, success)
	}
}

// newResetToken returns the raw token for the link and its stored hash.
func newResetToken() (token string, tokenHash string, err error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token = hex.EncodeToString(b)
	return token, hashResetToken(token), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
