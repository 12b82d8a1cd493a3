// Package cache holds the Redis-backed submission attempt guard.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/formcheck-backend/internal/config"
)

// NewClient connects to Redis and pings it for fail-fast validation.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// AttemptGuard claims client attempt ids so a retried submission is
// evaluated and stored at most once within the TTL.
type AttemptGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAttemptGuard creates an AttemptGuard whose claims expire after ttl.
func NewAttemptGuard(client *redis.Client, ttl time.Duration) *AttemptGuard {
	return &AttemptGuard{client: client, ttl: ttl}
}

func attemptKey(formID uuid.UUID, attemptID string) string {
	return "formcheck:attempt:" + formID.String() + ":" + attemptID
}

// Claim records the attempt. It returns false if the attempt was already
// claimed and not released.
func (g *AttemptGuard) Claim(ctx context.Context, formID uuid.UUID, attemptID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, attemptKey(formID, attemptID), time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim attempt: %w", err)
	}
	return ok, nil
}

// Release forgets a claimed attempt so the client may retry it.
func (g *AttemptGuard) Release(ctx context.Context, formID uuid.UUID, attemptID string) error {
	if err := g.client.Del(ctx, attemptKey(formID, attemptID)).Err(); err != nil {
		return fmt.Errorf("release attempt: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (g *AttemptGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

// NoopGuard accepts every attempt. Used when Redis is not configured;
// the database unique index still rejects duplicate attempt ids.
type NoopGuard struct{}

func (NoopGuard) Claim(context.Context, uuid.UUID, string) (bool, error) { return true, nil }

func (NoopGuard) Release(context.Context, uuid.UUID, string) error { return nil }

func (NoopGuard) Ping(context.Context) error { return nil }
