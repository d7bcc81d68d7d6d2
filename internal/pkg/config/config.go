package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/easybank/internal/pkg/constants"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when no signing key is configured
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// InitConfig loads .env in local mode and builds the config from the environment
func InitConfig(configPath string) (*models.Config, error) {
	v := newViper()
	if v.GetString("APP_ENV") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	configs := loadConfig(v)
	if configs.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return configs, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "easybank")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_EMAIL_TOPIC", constants.TopicEmail)
	v.SetDefault("NSQ_EMAIL_CHANNEL", constants.ChannelEmailNotifier)

	v.SetDefault("JWT_ISSUER", "easybank")
	v.SetDefault("JWT_ACCESS_TTL", "24h")
	v.SetDefault("JWT_REFRESH_TTL", "24h")

	v.SetDefault("OTP_TTL", "4m")
	v.SetDefault("OTP_DIGITS", 6)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_LIMIT", 10)
	v.SetDefault("RATE_LIMIT_PERIOD", "1m")

	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("SMTP_FROM", "no-reply@easybank.local")

	v.SetDefault("EMAIL_MAX_ATTEMPTS", 3)
	v.SetDefault("EMAIL_BACKOFF", "2s")
	v.SetDefault("EMAIL_BREAKER_FAILURES", 5)
	v.SetDefault("EMAIL_BREAKER_COOLDOWN", "1m")

	v.SetDefault("NEW_RELIC_ENABLED", false)
	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = getDuration(v, "SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = getDuration(v, "SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = getDuration(v, "SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddrs = splitList(v.GetString("NSQ_LOOKUPD_ADDRESSES"))
	configs.NSQ.EmailTopic = v.GetString("NSQ_EMAIL_TOPIC")
	configs.NSQ.EmailChannel = v.GetString("NSQ_EMAIL_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")
	configs.JWT.AccessTTL = getDuration(v, "JWT_ACCESS_TTL")
	configs.JWT.RefreshTTL = getDuration(v, "JWT_REFRESH_TTL")

	// OTP config
	configs.OTP.TTL = getDuration(v, "OTP_TTL")
	configs.OTP.Digits = v.GetInt("OTP_DIGITS")

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.Period = getDuration(v, "RATE_LIMIT_PERIOD")

	// SMTP config
	configs.SMTP.Host = v.GetString("SMTP_HOST")
	configs.SMTP.Port = v.GetInt("SMTP_PORT")
	configs.SMTP.Username = v.GetString("SMTP_USERNAME")
	configs.SMTP.Password = v.GetString("SMTP_PASSWORD")
	configs.SMTP.From = v.GetString("SMTP_FROM")

	// Email retry policy
	configs.Email.MaxAttempts = v.GetInt("EMAIL_MAX_ATTEMPTS")
	configs.Email.Backoff = getDuration(v, "EMAIL_BACKOFF")
	configs.Email.BreakerFailures = v.GetInt("EMAIL_BREAKER_FAILURES")
	configs.Email.BreakerCooldown = getDuration(v, "EMAIL_BREAKER_COOLDOWN")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// getDuration falls back to the registered default when the value does not parse
func getDuration(v *viper.Viper, key string) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		def, _ := time.ParseDuration(defaultString(key))
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, def)
		return def
	}
	return d
}

func defaultString(key string) string {
	fresh := viper.New()
	setDefaults(fresh)
	return fresh.GetString(key)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
