package email

import (
	"errors"
	"net/smtp"
	"testing"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(t *testing.T, cfg config.SMTPConfig, send sendFunc) *smtpSender {
	t.Helper()
	s, err := NewSender(cfg)
	require.NoError(t, err)
	impl := s.(*smtpSender)
	impl.send = send
	impl.backoff = time.Millisecond
	return impl
}

func TestSendPasswordReset_RendersTemplate(t *testing.T) {
	var got []byte
	var rcpt []string
	s := newTestSender(t, config.SMTPConfig{Host: "smtp.local", Port: 25, From: "no-reply@local", FromName: "Back Office"},
		func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			assert.Equal(t, "smtp.local:25", addr)
			assert.Nil(t, a)
			rcpt = to
			got = msg
			return nil
		})

	err := s.SendPasswordReset("ana@example.com", "Ana", "http://app/reset-password?token=abc", time.Date(2024, 3, 1, 15, 4, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{"ana@example.com"}, rcpt)
	body := string(got)
	assert.Contains(t, body, "Subject: Restablecer contraseña")
	assert.Contains(t, body, "Hola Ana,")
	assert.Contains(t, body, "http://app/reset-password?token=abc")
	assert.Contains(t, body, "01/03/2024 15:04")
}

func TestSendPasswordReset_RetriesThenFails(t *testing.T) {
	calls := 0
	s := newTestSender(t, config.SMTPConfig{Host: "smtp.local", Port: 25},
		func(string, smtp.Auth, string, []string, []byte) error {
			calls++
			return errors.New("connection refused")
		})

	err := s.SendPasswordReset("ana@example.com", "", "http://x", time.Now())
	assert.Error(t, err)
	assert.Equal(t, maxRetries, calls)
}

func TestSendPasswordReset_SkipsWithoutHost(t *testing.T) {
	s := newTestSender(t, config.SMTPConfig{}, func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called")
		return nil
	})
	assert.NoError(t, s.SendPasswordReset("ana@example.com", "", "http://x", time.Now()))
}
