package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	RateLimit RateLimitConfig
	SMTP      SMTPConfig
	Email     EmailConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer/consumer configuration
type NSQConfig struct {
	Address      string
	LookupdAddrs []string
	EmailTopic   string
	EmailChannel string
}

// JWTConfig contains JWT authentication configuration.
// Secret is the process-wide HMAC key; it is never logged.
type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// OTPConfig contains one-time password settings
type OTPConfig struct {
	TTL    time.Duration
	Digits int
}

// RateLimitConfig contains settings for the Redis backed limiter on auth routes
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// SMTPConfig contains outbound mail server settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailConfig contains the delivery retry policy and the SMTP circuit breaker
type EmailConfig struct {
	MaxAttempts     int
	Backoff         time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

// NewRelicConfig contains APM settings
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
