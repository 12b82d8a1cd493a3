package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Redis      RedisConfig      `yaml:"redis"`
	Signals    SignalsConfig    `yaml:"signals"`
	Validation ValidationConfig `yaml:"validation"`
	Retention  RetentionConfig  `yaml:"retention"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds settings for verifying form-author access tokens.
// Tokens are issued by the account service; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"formcheck"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for public endpoints.
type RateLimitConfig struct {
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"RATE_LIMIT_SUBMIT_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// RedisConfig holds the connection used for submission attempt deduplication.
// An empty Addr disables deduplication.
type RedisConfig struct {
	Addr       string        `yaml:"addr"        env:"REDIS_ADDR"`
	Password   string        `yaml:"password"    env:"REDIS_PASSWORD"`
	DB         int           `yaml:"db"          env:"REDIS_DB"          env-default:"0"`
	AttemptTTL time.Duration `yaml:"attempt_ttl" env:"REDIS_ATTEMPT_TTL" env-default:"24h"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// Signal provider names.
const (
	SignalProviderDisabled  = "disabled"
	SignalProviderGoogle    = "google"
	SignalProviderAnthropic = "anthropic"
	SignalProviderOpenAI    = "openai"
	SignalProviderGemini    = "gemini"
)

// SignalsConfig selects and configures the text signal provider.
type SignalsConfig struct {
	Provider    string        `yaml:"provider"     env:"SIGNALS_PROVIDER"     env-default:"disabled"`
	APIKey      string        `yaml:"api_key"      env:"SIGNALS_API_KEY"`
	BaseURL     string        `yaml:"base_url"     env:"SIGNALS_BASE_URL"`
	Model       string        `yaml:"model"        env:"SIGNALS_MODEL"`
	Language    string        `yaml:"language"     env:"SIGNALS_LANGUAGE"     env-default:"en"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"SIGNALS_HTTP_TIMEOUT" env-default:"10s"`
	MaxTokens   int           `yaml:"max_tokens"   env:"SIGNALS_MAX_TOKENS"   env-default:"1024"`
}

// ValidationConfig holds answer validation thresholds.
type ValidationConfig struct {
	MinLength              int           `yaml:"min_length"               env:"VALIDATION_MIN_LENGTH"               env-default:"3"`
	MaxLength              int           `yaml:"max_length"               env:"VALIDATION_MAX_LENGTH"               env-default:"5000"`
	ShoutingRatio          float64       `yaml:"shouting_ratio"           env:"VALIDATION_SHOUTING_RATIO"           env-default:"0.5"`
	SpecialCharRatio       float64       `yaml:"special_char_ratio"       env:"VALIDATION_SPECIAL_CHAR_RATIO"       env-default:"0.3"`
	NegativeWarnThreshold  float64       `yaml:"negative_warn_threshold"  env:"VALIDATION_NEGATIVE_WARN_THRESHOLD"  env-default:"-0.6"`
	NegativeErrorThreshold float64       `yaml:"negative_error_threshold" env:"VALIDATION_NEGATIVE_ERROR_THRESHOLD" env-default:"-0.8"`
	SemanticConcurrency    int           `yaml:"semantic_concurrency"     env:"VALIDATION_SEMANTIC_CONCURRENCY"     env-default:"4"`
	SignalTimeout          time.Duration `yaml:"signal_timeout"           env:"VALIDATION_SIGNAL_TIMEOUT"           env-default:"5s"`
}

// RetentionConfig holds data retention settings used by cmd/cleanup.
type RetentionConfig struct {
	SubmissionDays int `yaml:"submission_days" env:"RETENTION_SUBMISSION_DAYS" env-default:"365"`
}

// DefaultValidation returns the validation thresholds used when no
// configuration file is involved (CLI dry runs, tests).
func DefaultValidation() ValidationConfig {
	return ValidationConfig{
		MinLength:              3,
		MaxLength:              5000,
		ShoutingRatio:          0.5,
		SpecialCharRatio:       0.3,
		NegativeWarnThreshold:  -0.6,
		NegativeErrorThreshold: -0.8,
		SemanticConcurrency:    4,
		SignalTimeout:          5 * time.Second,
	}
}
