package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MFA verification mode constants
const (
	MFAModeStatic = "static"
	MFAModeTOTP   = "totp"
)

// Environment constants
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// DefaultSessionTTL is the fixed validity of an issued session token.
const DefaultSessionTTL = time.Hour

// minProductionSecretLength matches the HS256 key size.
const minProductionSecretLength = 32

type Config struct {
	// Server settings
	ServerAddr   string
	BaseURL      string
	Environment  string
	IsProduction bool

	// JWT settings
	JWTSecret  string
	SessionTTL time.Duration // always DefaultSessionTTL when loaded from env

	// Risk decision
	RiskThreshold int

	// Credential store
	DatabaseDSN   string // SQLite DSN; in-memory by default
	SeedDemoUsers bool
	UsersFile     string // Optional YAML file with users to seed
	UserCacheTTL  time.Duration
	DBInitTimeout time.Duration

	// Second factor
	MFAMode string // "static" or "totp"

	// Context extraction
	DefaultCountry      string
	TrustContextHeaders bool
	TrustedProxies      []string // IPs/CIDRs allowed to set X-Forwarded-For

	// Prometheus Metrics settings
	MetricsEnabled bool
	MetricsToken   string // Bearer token for /metrics; empty disables auth

	// Audit Logging settings
	EnableAuditLogging bool
	AuditLogBufferSize int

	// Graceful shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	environment := getEnv("ENVIRONMENT", EnvironmentDevelopment)

	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		Environment:  environment,
		IsProduction: environment == EnvironmentProduction,

		JWTSecret:  getEnv("JWT_SECRET", "riskgate-dev-secret-change-in-production"),
		SessionTTL: DefaultSessionTTL,

		RiskThreshold: getEnvInt("RISK_THRESHOLD", 50),

		DatabaseDSN:   getEnv("DATABASE_DSN", "file::memory:?cache=shared"),
		SeedDemoUsers: getEnvBool("SEED_DEMO_USERS", true),
		UsersFile:     getEnv("USERS_FILE", ""),
		UserCacheTTL:  getEnvDuration("USER_CACHE_TTL", 5*time.Minute),
		DBInitTimeout: getEnvDuration("DB_INIT_TIMEOUT", 10*time.Second),

		MFAMode: getEnv("MFA_MODE", MFAModeStatic),

		DefaultCountry:      getEnv("DEFAULT_COUNTRY", "US"),
		TrustContextHeaders: getEnvBool("TRUST_CONTEXT_HEADERS", false),
		TrustedProxies:      getEnvList("TRUSTED_PROXIES"),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		MetricsToken:   getEnv("METRICS_TOKEN", ""),

		EnableAuditLogging: getEnvBool("ENABLE_AUDIT_LOGGING", true),
		AuditLogBufferSize: getEnvInt("AUDIT_LOG_BUFFER_SIZE", 1000),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.IsProduction && len(c.JWTSecret) < minProductionSecretLength {
		return fmt.Errorf(
			"JWT_SECRET must be at least %d bytes in production",
			minProductionSecretLength,
		)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL value: %s (must be positive)", c.SessionTTL)
	}
	if c.RiskThreshold < 0 || c.RiskThreshold > 100 {
		return fmt.Errorf("invalid RISK_THRESHOLD value: %d (must be 0-100)", c.RiskThreshold)
	}
	switch c.MFAMode {
	case MFAModeStatic, MFAModeTOTP:
	default:
		return fmt.Errorf("invalid MFA_MODE value: %q (must be: static, totp)", c.MFAMode)
	}
	if c.UserCacheTTL < 0 {
		return fmt.Errorf("invalid USER_CACHE_TTL value: %s (must not be negative)", c.UserCacheTTL)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma-separated value, dropping empty items.
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
