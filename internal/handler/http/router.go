package http

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gastrodesk/backoffice-api/internal/domain/user"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/middleware"
	"github.com/gastrodesk/backoffice-api/internal/handler/http/response"
	"github.com/gastrodesk/backoffice-api/internal/pkg/jwt"
	"github.com/gastrodesk/backoffice-api/internal/pkg/metrics"
	"github.com/gastrodesk/backoffice-api/internal/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries everything the router mounts.
type RouterConfig struct {
	Logger                *slog.Logger
	AllowedOrigins        []string
	ContentSecurityPolicy string
	// FrontendDir serves the built web client behind the gate when set.
	FrontendDir string

	JWTService   jwt.Service
	Sessions     middleware.SessionResolver
	LoginLimiter ratelimit.Limiter
	Metrics      *metrics.Metrics
	// ReadinessChecks are run by /readyz, keyed by dependency name.
	ReadinessChecks map[string]func(ctx context.Context) bool

	AuthHandler       AuthHandler
	EmployeeHandler   EmployeeHandler
	AttendanceHandler AttendanceHandler
	DashboardHandler  DashboardHandler
	DeliveryHandler   DeliveryHandler
	PayrollHandler    PayrollHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	var rejects middleware.RejectRecorder
	if cfg.Metrics != nil {
		rejects = cfg.Metrics
		r.Handle("/metrics", cfg.Metrics.Handler())
	}
	r.Get("/readyz", readyz(cfg.ReadinessChecks))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(cfg.LoginLimiter, rejects)).Post("/login", cfg.AuthHandler.Login)
			r.Post("/forgot-password", cfg.AuthHandler.ForgotPassword)
			r.Post("/reset-password", cfg.AuthHandler.ResetPassword)
			r.Get("/login/oauth/google", cfg.AuthHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", cfg.AuthHandler.OAuthCallbackGoogle)
			r.Get("/events", cfg.AuthHandler.Events)

			r.Group(func(r chi.Router) {
				r.Use(authenticated(cfg)...)
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Get("/me", cfg.AuthHandler.Me)
				r.Get("/me/permissions", cfg.AuthHandler.Permissions)
				r.Get("/events/token", cfg.AuthHandler.EventsToken)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(authenticated(cfg)...)

			r.Get("/shifts", cfg.EmployeeHandler.Shifts)

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireAnyPermission(user.PermissionViewEmployees, user.PermissionViewAttendance))
				r.Get("/", cfg.EmployeeHandler.List)
				r.Get("/{id}", cfg.EmployeeHandler.Get)
				r.Get("/{id}/expected-hours", cfg.EmployeeHandler.ExpectedHours)
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionViewAttendance))
					r.Get("/", cfg.AttendanceHandler.List)
					r.Get("/export", cfg.AttendanceHandler.Export)
					r.Get("/{id}", cfg.AttendanceHandler.Get)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEditAttendance))
					r.Post("/", cfg.AttendanceHandler.Create)
					r.Post("/preview", cfg.AttendanceHandler.Preview)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", cfg.DashboardHandler.GetDashboard)
				r.Get("/stats", cfg.DashboardHandler.GetStats)
			})
			r.Get("/reports", cfg.DashboardHandler.GetReports)

			r.With(middleware.RequirePermission(user.PermissionViewDelivery)).
				Get("/delivery/stats", cfg.DeliveryHandler.Stats)

			r.With(middleware.RequirePermission(user.PermissionViewPayroll)).
				Get("/payroll", cfg.PayrollHandler.Get)
		})
	})

	// Web client pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.Gate(cfg.JWTService.JWTAuth(), cfg.Sessions, cfg.ContentSecurityPolicy))
		r.Handle("/*", frontendHandler(cfg.FrontendDir))
	})

	return r
}

// authenticated verifies the access token, loads its session and marks the
// response with the security headers.
func authenticated(cfg RouterConfig) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		jwtauth.Verifier(cfg.JWTService.JWTAuth()),
		middleware.AuthRequired(cfg.Sessions),
		middleware.SecurityHeaders(cfg.ContentSecurityPolicy),
	}
}

func readyz(checks map[string]func(ctx context.Context) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		failed := map[string]string{}
		for name, check := range checks {
			if !check(r.Context()) {
				failed[name] = "unavailable"
			}
		}
		if len(failed) > 0 {
			slog.Warn("Readiness check failed", "dependencies", failed)
			response.ServiceUnavailable(w, "Dependencies unavailable", failed)
			return
		}
		response.Success(w, map[string]string{"status": "ready"})
	}
}

// frontendHandler serves the single page app, falling back to index.html for
// client-side routes.
func frontendHandler(dir string) http.Handler {
	if dir == "" {
		return http.NotFoundHandler()
	}
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, err := os.Stat(filepath.Join(dir, filepath.Clean("/"+r.URL.Path))); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})
}
