package http

import (
	"net/http"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/middleware"
)

// optionalQueryParam returns nil when the query parameter is absent or empty
func optionalQueryParam(r *http.Request, key string) *string {
	if val := r.URL.Query().Get(key); val != "" {
		return &val
	}
	return nil
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}
