package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/docintegrator/doc-service/internal/document"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	JWT       JWTConfig
	Documents DocumentsConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// DatabaseConfig configures the PostgreSQL store. When URL is empty the
// service falls back to MongoDB, and then to the in-memory store.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

// JWTConfig enables the bearer-token guard on mutating routes when Secret
// is set.
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

// DocumentsConfig carries the status vocabulary override. Statuses are
// comma-separated and ranked by position; empty means the built-in default
// policy.
type DocumentsConfig struct {
	Statuses string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5010")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("MONGODB_DATABASE", "docintegrator")
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("JWT_ACCESS_TOKEN_TTL", 15)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Database: DatabaseConfig{
			URL:             viper.GetString("DATABASE_URL"),
			MaxOpenConns:    viper.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DATABASE_CONN_MAX_LIFETIME_MINUTES")) * time.Minute,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		JWT: JWTConfig{
			Secret:         viper.GetString("JWT_SECRET"),
			AccessTokenTTL: time.Duration(viper.GetInt("JWT_ACCESS_TOKEN_TTL")) * time.Minute,
		},
		Documents: DocumentsConfig{
			Statuses: viper.GetString("DOCUMENT_STATUSES"),
		},
	}

	return cfg, nil
}

// Policy builds the document policy from configuration. A comma-separated
// DOCUMENT_STATUSES list overrides the vocabulary, ranked by position;
// otherwise the built-in default applies.
func (c *Config) Policy() document.Policy {
	if strings.TrimSpace(c.Documents.Statuses) == "" {
		return document.DefaultPolicy()
	}
	p := document.Policy{
		StatusRanks: map[string]int{},
		SortFields:  document.DefaultPolicy().SortFields,
	}
	for _, s := range strings.Split(c.Documents.Statuses, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		p.AllowedStatuses = append(p.AllowedStatuses, s)
		p.StatusRanks[s] = len(p.AllowedStatuses)
	}
	if len(p.AllowedStatuses) == 0 {
		return document.DefaultPolicy()
	}
	return p
}
