package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
	"github.com/gastrodesk/backoffice-api/internal/pkg/ratelimit"
)

const fallbackClientIP = "127.0.0.1"

// RejectRecorder counts rate limited requests.
type RejectRecorder interface {
	RateLimited(route string)
}

// RateLimit admits requests per client IP. Limiter failures let the request
// through.
func RateLimit(limiter ratelimit.Limiter, recorder RejectRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				slog.Error("rate limiter error", "error", err, "client_ip", ip)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if recorder != nil {
					recorder.RateLimited(r.URL.Path)
				}
				slog.Warn("rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
				response.TooManyRequests(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP is the first X-Forwarded-For entry, else the remote address host.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if r.RemoteAddr == "" {
		return fallbackClientIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	if host == "" {
		return fallbackClientIP
	}
	return host
}
