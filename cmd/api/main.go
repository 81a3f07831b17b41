package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gastrodesk/backoffice-api/internal/config"
	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/domain/payroll"
	appHTTP "github.com/gastrodesk/backoffice-api/internal/handler/http"
	"github.com/gastrodesk/backoffice-api/internal/pkg/cache"
	"github.com/gastrodesk/backoffice-api/internal/pkg/cron"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
	"github.com/gastrodesk/backoffice-api/internal/pkg/email"
	"github.com/gastrodesk/backoffice-api/internal/pkg/jwt"
	"github.com/gastrodesk/backoffice-api/internal/pkg/metrics"
	"github.com/gastrodesk/backoffice-api/internal/pkg/oauth"
	"github.com/gastrodesk/backoffice-api/internal/pkg/ratelimit"
	"github.com/gastrodesk/backoffice-api/internal/pkg/session"
	"github.com/gastrodesk/backoffice-api/internal/pkg/sse"
	"github.com/gastrodesk/backoffice-api/internal/repository/postgresql"
	attendanceService "github.com/gastrodesk/backoffice-api/internal/service/attendance"
	serviceAuth "github.com/gastrodesk/backoffice-api/internal/service/auth"
	dashboardService "github.com/gastrodesk/backoffice-api/internal/service/dashboard"
	deliveryService "github.com/gastrodesk/backoffice-api/internal/service/delivery"
	employeeService "github.com/gastrodesk/backoffice-api/internal/service/employee"
	payrollService "github.com/gastrodesk/backoffice-api/internal/service/payroll"
	reportService "github.com/gastrodesk/backoffice-api/internal/service/report"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := appHTTP.NewLogger(os.Stdout, "backoffice-api", cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	readiness := map[string]func(ctx context.Context) bool{
		"database": db.Healthy,
	}

	var redisClient *cache.Redis
	if cfg.UsesRedis() {
		redisClient = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer redisClient.Close()
		if !redisClient.Healthy(ctx) {
			slog.Warn("Redis is not reachable yet", "addr", cfg.Redis.Addr)
		}
		readiness["redis"] = redisClient.Healthy
	}

	// Interface-typed so a redis backend leaves the sweepers nil
	var (
		sessions      auth.SessionStore
		sessionSweep  cron.SessionSweeper
		loginLimiter  ratelimit.Limiter
		limiterPruner cron.LimiterPruner
	)

	if cfg.Session.Backend == "redis" {
		sessions = session.NewRedisStore(redisClient.Client)
	} else {
		memoryStore := session.NewMemoryStore()
		sessions = memoryStore
		sessionSweep = memoryStore
	}

	if cfg.RateLimit.Backend == "redis" {
		loginLimiter = ratelimit.NewFixedWindow(redisClient.Client, "ratelimit:login", cfg.RateLimit.LoginPerMinute, time.Minute)
	} else {
		bucket := ratelimit.NewTokenBucket(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginPerMinute)
		loginLimiter = bucket
		limiterPruner = bucket
	}

	userRepo := postgresql.NewUserRepository(db)
	passwordResetRepo := postgresql.NewPasswordResetRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	deliveryRepo := postgresql.NewDeliveryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	transactor := postgresql.NewTransactor(db)

	scheduler := cron.NewScheduler()
	cron.NewMaintenanceJobs(sessionSweep, limiterPruner, passwordResetRepo).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	appMetrics := metrics.New()
	hub := sse.NewHub()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.Security.CookieSecure)
	if err != nil {
		return fmt.Errorf("init jwt service: %w", err)
	}

	mailer, err := email.NewSender(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("init email sender: %w", err)
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	} else {
		slog.Info("Google sign-in disabled, OAuth client not configured")
	}

	authService := serviceAuth.NewAuthService(
		userRepo,
		passwordResetRepo,
		sessions,
		JWTService,
		transactor,
		mailer,
		hub,
		appMetrics,
		serviceAuth.Settings{
			SessionTTL:    cfg.Session.TTL,
			FrontendURL:   cfg.App.FrontendURL,
			GoogleEnabled: googleService != nil,
		},
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, appMetrics)
	reportSvc := reportService.NewReportService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, reportSvc)
	deliverySvc := deliveryService.NewDeliveryService(deliveryRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, payroll.Rates{
		LateMinuteRate:  cfg.Payroll.LateMinuteRate,
		EarlyMinuteRate: cfg.Payroll.EarlyMinuteRate,
	})

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:                logger,
		AllowedOrigins:        cfg.App.AllowedOrigins,
		ContentSecurityPolicy: cfg.Security.ContentSecurityPolicy,
		FrontendDir:           cfg.App.FrontendDir,
		JWTService:            JWTService,
		Sessions:              authService,
		LoginLimiter:          loginLimiter,
		Metrics:               appMetrics,
		ReadinessChecks:       readiness,
		AuthHandler:           appHTTP.NewAuthHandler(JWTService, authService, googleService, hub, cfg.App.FrontendURL, cfg.Security.CookieSecure),
		EmployeeHandler:       appHTTP.NewEmployeeHandler(employeeSvc),
		AttendanceHandler:     appHTTP.NewAttendanceHandler(attendanceSvc),
		DashboardHandler:      appHTTP.NewDashboardHandler(dashboardSvc, reportSvc),
		DeliveryHandler:       appHTTP.NewDeliveryHandler(deliverySvc),
		PayrollHandler:        appHTTP.NewPayrollHandler(payrollSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
