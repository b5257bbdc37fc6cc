package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "costeo:webhook:short:"

type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Redis memoizes short id to store id lookups.
type Redis struct {
	client client
	ttl    time.Duration
}

type Config struct {
	Addr     string
	Password string
	TTL      time.Duration
}

func New(cfg Config) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
		}),
		ttl: cfg.TTL,
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) GetStoreID(ctx context.Context, shortID string) (string, bool, error) {
	storeID, err := r.client.Get(ctx, keyPrefix+shortID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", shortID, err)
	}
	return storeID, true, nil
}

func (r *Redis) SetStoreID(ctx context.Context, shortID, storeID string) error {
	if err := r.client.Set(ctx, keyPrefix+shortID, storeID, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", shortID, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
