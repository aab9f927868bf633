package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"mader-backend/internal/infrastructure/database"
)

// envReader parses typed variables and keeps every failure, so one run
// reports all bad settings at once.
type envReader struct {
	errs []error
}

func (r *envReader) intVar(key string, def int) int {
	raw := getEnv(key, strconv.Itoa(def))
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
		return def
	}
	return v
}

func (r *envReader) int32Var(key string, def int32) int32 {
	v := r.intVar(key, int(def))
	if v < 0 || v > math.MaxInt32 {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %d out of range", key, v))
		return def
	}
	return int32(v)
}

func (r *envReader) durationVar(key string, def time.Duration) time.Duration {
	raw := getEnv(key, def.String())
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
		return def
	}
	return v
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}

// LoadDatabaseConfig reads the PostgreSQL connection, pool and start-up
// retry settings from DB_* variables
func LoadDatabaseConfig() (*database.DBConfig, error) {
	env := &envReader{}

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     env.intVar("DB_PORT", 5432),
		Username: getEnv("DB_USER", "mader"),
		Password: getEnv("DB_PASSWORD", "secret"),
		DBName:   getEnv("DB_NAME", "mader"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          env.int32Var("DB_MAX_CONNECTIONS", 25),
		MinConns:          env.int32Var("DB_MIN_CONNECTIONS", 5),
		MaxConnLifetime:   env.durationVar("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   env.durationVar("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: env.durationVar("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     env.intVar("DB_MAX_RETRIES", 5),
		RetryDelay:     env.durationVar("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: env.durationVar("DB_CONNECT_TIMEOUT", 10*time.Second),
	}

	if err := env.err(); err != nil {
		return nil, err
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	return cfg, nil
}
