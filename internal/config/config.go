package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Refresh  RefreshConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
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

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// RefreshConfig drives the scheduled urgency refresh: how often cached board
// pages are flushed and a refresh event is broadcast, and how long cached
// pages may live. TTL never exceeds the interval so deadline labels cannot
// outlive a tick.
type RefreshConfig struct {
	Interval time.Duration
	CacheTTL time.Duration
}

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

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDurationSeconds("DB_CONNECT_TIMEOUT_SECONDS"),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS")),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS")),
		PoolMaxConnLifetime:   optDurationSeconds("DB_POOL_MAX_CONN_LIFETIME_SECONDS"),
		PoolMaxConnIdleTime:   optDurationSeconds("DB_POOL_MAX_CONN_IDLE_SECONDS"),
		PoolHealthCheckPeriod: optDurationSeconds("DB_POOL_HEALTHCHECK_SECONDS"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	interval := time.Duration(optInt("BOARD_REFRESH_MINUTES")) * time.Minute
	if interval <= 0 {
		interval = time.Minute
	}
	cfg.Refresh = RefreshConfig{
		Interval: interval,
		CacheTTL: interval,
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func optDurationSeconds(key string) time.Duration {
	return time.Duration(optInt(key)) * time.Second
}
