package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	App        AppConfig
	Storage    StorageConfig
	JWT        JWTConfig
	OpenRouter OpenRouterConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type StorageConfig struct {
	Driver   string
	Database DatabaseConfig
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// OpenRouterConfig configures the outbound skill-extraction call. An empty
// APIKey is valid: extraction degrades to an empty result instead of failing.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

const (
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel = "meta-llama/llama-3.1-8b-instruct:free"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	driver := opt("STORAGE_DRIVER")
	if driver == "" {
		driver = StorageDriverMemory
	}
	if driver != StorageDriverMemory && driver != StorageDriverPostgres {
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
	cfg.Storage = StorageConfig{
		Driver: driver,
		Database: DatabaseConfig{
			DBHost:     opt("DB_HOST"),
			DBPort:     opt("DB_PORT"),
			DBName:     opt("DB_NAME"),
			DBUser:     opt("DB_USER"),
			DBPassword: opt("DB_PASSWORD"),
			DBSSLMode:  opt("DB_SSL_MODE"),

			ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
			PoolMaxConns:          optInt32("DB_POOL_MAX_CONNS", 0),
			PoolMinConns:          optInt32("DB_POOL_MIN_CONNS", 0),
			PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
			PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
			PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
		},
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	cfg.OpenRouter = OpenRouterConfig{
		APIKey:  opt("OPENROUTER_KEY"),
		BaseURL: withDefault(opt("OPENROUTER_URL"), defaultOpenRouterURL),
		Model:   withDefault(opt("OPENROUTER_MODEL"), defaultOpenRouterModel),
		Timeout: optDuration("OPENROUTER_TIMEOUT", 8*time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func optInt32(key string, def int32) int32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n < 0 {
		return def
	}
	return int32(n)
}
