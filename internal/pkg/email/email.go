package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Sender delivers transactional mail.
type Sender interface {
	SendPasswordReset(to, name, resetLink string, expiresAt time.Time) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	cfg       config.SMTPConfig
	templates *template.Template
	send      sendFunc
	backoff   time.Duration
}

func NewSender(cfg config.SMTPConfig) (Sender, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &smtpSender{
		cfg:       cfg,
		templates: tmpl,
		send:      smtp.SendMail,
		backoff:   time.Second,
	}, nil
}

type passwordResetData struct {
	Name      string
	ResetLink string
	ExpiresAt string
}

func (s *smtpSender) SendPasswordReset(to, name, resetLink string, expiresAt time.Time) error {
	data := passwordResetData{
		Name:      name,
		ResetLink: resetLink,
		ExpiresAt: expiresAt.Format("02/01/2006 15:04"),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return s.sendHTML(to, "Restablecer contraseña", body.String())
}

func (s *smtpSender) sendHTML(to, subject, htmlBody string) error {
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.send(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
		if err == nil {
			slog.Info("Email sent", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}
		lastErr = err
		slog.Error("Failed to send email", "to", to, "subject", subject, "attempt", attempt, "error", err)

		// 1s, 2s between attempts
		if attempt < maxRetries {
			time.Sleep(s.backoff << (attempt - 1))
		}
	}
	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
