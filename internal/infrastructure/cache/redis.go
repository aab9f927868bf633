package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

var ErrNotConnected = errors.New("redis client is not initialized")

// Options configures the connection backing the login throttle.
// Zero values fall back to small pool defaults.
type Options struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	Timeout  time.Duration
}

func (o Options) withDefaults() Options {
	if o.PoolSize <= 0 {
		o.PoolSize = 10
	}
	if o.Timeout <= 0 {
		o.Timeout = 3 * time.Second
	}
	return o
}

// RedisClient owns the go-redis client. Client is exposed so the
// attempt tracker can use it as its Counter.
type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(opts Options) *RedisClient {
	opts = opts.withDefaults()

	return &RedisClient{
		Client: redis.NewClient(&redis.Options{
			Addr:         opts.Addr,
			Password:     opts.Password,
			DB:           opts.DB,
			PoolSize:     opts.PoolSize,
			MaxRetries:   1,
			DialTimeout:  opts.Timeout,
			ReadTimeout:  opts.Timeout,
			WriteTimeout: opts.Timeout,
		}),
	}
}

// Connect pings once; the caller decides whether failure is fatal.
func (r *RedisClient) Connect(ctx context.Context) error {
	if err := r.ping(ctx); err != nil {
		return err
	}

	log.Info().
		Str("addr", r.Client.Options().Addr).
		Int("db", r.Client.Options().DB).
		Msg("redis connected, login throttling enabled")
	return nil
}

func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.ping(ctx)
}

func (r *RedisClient) ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
