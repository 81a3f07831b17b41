package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGenerateState_IsRandom(t *testing.T) {
	g := NewGoogleService("id", "secret", "http://localhost/cb", nil)

	a, err := g.GenerateState()
	require.NoError(t, err)
	b, err := g.GenerateState()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 43)
}

func TestRedirectURL_CarriesState(t *testing.T) {
	g := NewGoogleService("client-1", "secret", "http://localhost/cb", nil)

	u, err := url.Parse(g.RedirectURL("xyz"))
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "http://localhost/cb", q.Get("redirect_uri"))
}

func TestUserInfo(t *testing.T) {
	verified := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		if verified {
			_, _ = w.Write([]byte(`{"id":"g-1","email":"ana@example.com","verified_email":true,"name":"Ana"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"g-1","email":"ana@example.com","verified_email":false}`))
	}))
	defer srv.Close()

	g := NewGoogleService("id", "secret", "http://localhost/cb", nil).(*googleService)
	g.userInfoURL = srv.URL
	token := &oauth2.Token{AccessToken: "tok", TokenType: "Bearer"}

	info, err := g.UserInfo(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "g-1", info.GoogleID)
	assert.Equal(t, "ana@example.com", info.Email)

	verified = false
	_, err = g.UserInfo(context.Background(), token)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}
