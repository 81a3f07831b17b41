package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/gastrodesk/backoffice-api/internal/pkg/jwt"
	"github.com/gastrodesk/backoffice-api/internal/pkg/session"
	"github.com/gastrodesk/backoffice-api/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users   map[string]user.User
	updated map[string]string
	linked  []string
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	f.linked = append(f.linked, googleID)
	for id, u := range f.users {
		if u.Email == email {
			provider := "google"
			u.OAuthProvider = &provider
			u.OAuthProviderID = &googleID
			f.users[id] = u
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if f.updated == nil {
		f.updated = map[string]string{}
	}
	f.updated[userID] = passwordHash
	return nil
}

type fakeResetRepo struct {
	tokens map[string]string
}

func (f *fakeResetRepo) Create(ctx context.Context, userID, tokenHash string, ttlMinutes int) error {
	if f.tokens == nil {
		f.tokens = map[string]string{}
	}
	f.tokens[tokenHash] = userID
	return nil
}

func (f *fakeResetRepo) Consume(ctx context.Context, tokenHash string) (auth.PasswordReset, error) {
	userID, ok := f.tokens[tokenHash]
	if !ok {
		return auth.PasswordReset{}, auth.ErrResetTokenInvalid
	}
	delete(f.tokens, tokenHash)
	return auth.PasswordReset{TokenHash: tokenHash, UserID: userID}, nil
}

func (f *fakeResetRepo) DeleteExpired(ctx context.Context) (int64, error) { return 0, nil }

type fakeTransactor struct{ calls int }

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type sentReset struct {
	to, name, link string
}

type fakeMailer struct {
	sent []sentReset
	err  error
}

func (f *fakeMailer) SendPasswordReset(to, name, resetLink string, expiresAt time.Time) error {
	f.sent = append(f.sent, sentReset{to: to, name: name, link: resetLink})
	return f.err
}

type fakeEvents struct{ names []string }

func (f *fakeEvents) Publish(userID, name string, data any) int {
	f.names = append(f.names, name)
	return 1
}

type fakeRecorder struct{ outcomes []bool }

func (f *fakeRecorder) Login(method string, success bool) {
	f.outcomes = append(f.outcomes, success)
}

type fixture struct {
	svc      *AuthServiceImpl
	users    *fakeUserRepo
	resets   *fakeResetRepo
	sessions *session.MemoryStore
	tx       *fakeTransactor
	mailer   *fakeMailer
	events   *fakeEvents
	recorder *fakeRecorder
}

func newFixture(t *testing.T, googleEnabled bool) fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	f := fixture{
		users: &fakeUserRepo{users: map[string]user.User{
			"u1": {ID: "u1", Email: "ana@example.com", FullName: "Ana Gómez", PasswordHash: &hashStr, Role: user.RoleManager},
			"u2": {ID: "u2", Email: "luis@example.com", Role: user.RoleWaiter},
		}},
		resets:   &fakeResetRepo{},
		sessions: session.NewMemoryStore(),
		tx:       &fakeTransactor{},
		mailer:   &fakeMailer{},
		events:   &fakeEvents{},
		recorder: &fakeRecorder{},
	}

	tokens, err := jwt.NewJWTService("test-secret", "1h", false)
	require.NoError(t, err)

	svc := NewAuthService(f.users, f.resets, f.sessions, tokens, f.tx, f.mailer, f.events, f.recorder, Settings{
		SessionTTL:    8 * time.Hour,
		FrontendURL:   "https://app.example.com/",
		GoogleEnabled: googleEnabled,
	})
	f.svc = svc.(*AuthServiceImpl)
	return f
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	resp, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "correct-horse"},
		auth.SessionTrackingRequest{IPAddress: "10.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.SessionID)

	sess, err := f.svc.Authenticate(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, user.RoleManager, sess.Role)
	assert.Equal(t, "Ana Gómez", sess.Name)
	assert.Equal(t, "10.0.0.1", sess.IPAddress)

	assert.Equal(t, []string{auth.EventSignedIn}, f.events.names)
	assert.Equal(t, []bool{true}, f.recorder.outcomes)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	cases := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"wrong password", auth.LoginRequest{Email: "ana@example.com", Password: "nope"}},
		{"unknown user", auth.LoginRequest{Email: "ghost@example.com", Password: "whatever"}},
		{"no password set", auth.LoginRequest{Email: "luis@example.com", Password: "whatever"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Login(ctx, tc.req, auth.SessionTrackingRequest{})
			require.Error(t, err)
			// Google-only accounts must look like any other failed sign-in
			assert.Equal(t, auth.ErrInvalidCredentials, err)
		})
	}
	assert.Equal(t, []bool{false, false, false}, f.recorder.outcomes)
	assert.Equal(t, 0, f.sessions.Len())
	assert.Empty(t, f.events.names)
}

func TestLogin_ValidationError(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.Login(context.Background(), auth.LoginRequest{Email: "ana"}, auth.SessionTrackingRequest{})
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestLogout(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	resp, err := f.svc.Login(ctx, auth.LoginRequest{Email: "ana@example.com", Password: "correct-horse"}, auth.SessionTrackingRequest{})
	require.NoError(t, err)
	sess, err := f.svc.Authenticate(ctx, resp.SessionID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, sess))

	_, err = f.svc.Authenticate(ctx, resp.SessionID)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
	assert.Equal(t, []string{auth.EventSignedIn, auth.EventSignedOut}, f.events.names)
}

func TestAuthenticate_Expired(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, f.sessions.Create(ctx, auth.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Minute)}))
	f.svc.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, err := f.svc.Authenticate(ctx, "s1")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	_, err = f.svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestMe(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	me, err := f.svc.Me(ctx, auth.Session{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, "luis@example.com", me.FullName)
	assert.Equal(t, "waiter", me.Role)
	assert.Contains(t, me.Permissions, user.PermissionEditDelivery)

	_, err = f.svc.Me(ctx, auth.Session{UserID: "missing"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	require.NoError(t, f.svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "ana@example.com"}))
	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, "ana@example.com", mail.to)
	assert.Equal(t, "Ana Gómez", mail.name)
	require.Contains(t, mail.link, "https://app.example.com/reset-password?token=")

	token := mail.link[len("https://app.example.com/reset-password?token="):]
	require.Len(t, f.resets.tokens, 1)
	_, stored := f.resets.tokens[hashResetToken(token)]
	assert.True(t, stored, "only the hash is persisted")

	err := f.svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, Password: "new-password", ConfirmPassword: "new-password"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.calls)
	require.Contains(t, f.users.updated, "u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(f.users.updated["u1"]), []byte("new-password")))

	err = f.svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, Password: "new-password", ConfirmPassword: "new-password"})
	assert.ErrorIs(t, err, auth.ErrResetTokenInvalid)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	f := newFixture(t, false)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), auth.ForgotPasswordRequest{Email: "ghost@example.com"}))
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.resets.tokens)
}

func TestForgotPassword_MailFailureIsSilent(t *testing.T) {
	f := newFixture(t, false)
	f.mailer.err = errors.New("smtp down")

	assert.NoError(t, f.svc.ForgotPassword(context.Background(), auth.ForgotPasswordRequest{Email: "ana@example.com"}))
}

func TestLoginWithGoogle(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.svc.LoginWithGoogle(context.Background(), "ana@example.com", "g-1", auth.SessionTrackingRequest{})
		assert.ErrorIs(t, err, auth.ErrGoogleSignInDisabled)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t, true)
		_, err := f.svc.LoginWithGoogle(context.Background(), "ghost@example.com", "g-1", auth.SessionTrackingRequest{})
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		assert.Equal(t, []bool{false}, f.recorder.outcomes)
	})

	t.Run("links on first sign-in", func(t *testing.T) {
		f := newFixture(t, true)
		ctx := context.Background()

		resp, err := f.svc.LoginWithGoogle(ctx, "ana@example.com", "g-1", auth.SessionTrackingRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, []string{"g-1"}, f.users.linked)

		_, err = f.svc.LoginWithGoogle(ctx, "ana@example.com", "g-1", auth.SessionTrackingRequest{})
		require.NoError(t, err)
		assert.Len(t, f.users.linked, 1, "already linked accounts are not relinked")
	})
}
