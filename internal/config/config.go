package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	App          AppConfig
	OAuth2Google OAuth2GoogleConfig
	SMTP         SMTPConfig
	RateLimit    RateLimitConfig
	Security     SecurityConfig
	Session      SessionConfig
	Payroll      PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendURL    string
	FrontendDir    string
	AllowedOrigins []string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// Enabled reports whether Google sign-in is configured.
func (c OAuth2GoogleConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != ""
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// RateLimitConfig controls the per-IP limiter in front of the login endpoint.
type RateLimitConfig struct {
	Backend        string // memory | redis
	LoginPerMinute int
}

type SecurityConfig struct {
	ContentSecurityPolicy string
	CookieSecure          bool
}

type SessionConfig struct {
	Backend string // memory | redis
	TTL     time.Duration
}

// PayrollConfig holds attendance deduction rates applied to monthly payroll.
type PayrollConfig struct {
	LateMinuteRate  decimal.Decimal
	EarlyMinuteRate decimal.Decimal
}

const defaultCSP = "default-src 'self'; script-src 'self' 'unsafe-inline' 'unsafe-eval'; style-src 'self' 'unsafe-inline';"

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "backoffice"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		FrontendDir:    getEnv("FRONTEND_DIR", ""),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{config.App.FrontendURL}
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// OAuth2 Google Configuration
	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@localhost"),
		FromName: getEnv("SMTP_FROM_NAME", "Back Office"),
	}

	// Rate limit configuration
	loginPerMinute, err := strconv.Atoi(getEnv("RATE_LIMIT_LOGIN_PER_MIN", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN_PER_MIN: %w", err)
	}

	config.RateLimit = RateLimitConfig{
		Backend:        getEnv("RATE_LIMIT_BACKEND", "memory"),
		LoginPerMinute: loginPerMinute,
	}

	// Security configuration
	config.Security = SecurityConfig{
		ContentSecurityPolicy: getEnv("CONTENT_SECURITY_POLICY", defaultCSP),
		CookieSecure:          getEnv("COOKIE_SECURE", "false") == "true",
	}

	// Session configuration
	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config.Session = SessionConfig{
		Backend: getEnv("SESSION_BACKEND", "memory"),
		TTL:     sessionTTL,
	}

	// Payroll configuration
	lateRate, err := decimal.NewFromString(getEnv("PAYROLL_LATE_MINUTE_RATE", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_MINUTE_RATE: %w", err)
	}
	earlyRate, err := decimal.NewFromString(getEnv("PAYROLL_EARLY_MINUTE_RATE", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_EARLY_MINUTE_RATE: %w", err)
	}

	config.Payroll = PayrollConfig{
		LateMinuteRate:  lateRate,
		EarlyMinuteRate: earlyRate,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME is invalid: %w", err)
	}
	if c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_LOGIN_PER_MIN must be positive")
	}
	if !isBackend(c.RateLimit.Backend) {
		return fmt.Errorf("RATE_LIMIT_BACKEND must be memory or redis")
	}
	if !isBackend(c.Session.Backend) {
		return fmt.Errorf("SESSION_BACKEND must be memory or redis")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Payroll.LateMinuteRate.IsNegative() || c.Payroll.EarlyMinuteRate.IsNegative() {
		return fmt.Errorf("payroll deduction rates must not be negative")
	}
	return nil
}

// UsesRedis reports whether any component is configured with the redis backend.
func (c *Config) UsesRedis() bool {
	return c.RateLimit.Backend == "redis" || c.Session.Backend == "redis"
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func isBackend(value string) bool {
	return value == "memory" || value == "redis"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
