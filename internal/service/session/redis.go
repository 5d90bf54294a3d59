package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"FinHub/internal/domain/models"
)

const redisPrefix = "finhub:session"

// RedisStore is a SessionStore backed by Redis, for running more than
// one instance behind a load balancer. Transcripts are stored as JSON
// with the TTL refreshed on every append.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(opts RedisOptions, ttl time.Duration) (*RedisStore, error) {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (rs *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", redisPrefix, sessionID)
}

// Get returns the stored transcript, if any.
func (rs *RedisStore) Get(ctx context.Context, sessionID string) ([]models.ChatTurn, bool) {
	data, err := rs.client.Get(ctx, rs.key(sessionID)).Bytes()
	if err != nil {
		return nil, false
	}
	var turns []models.ChatTurn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, false
	}
	return turns, true
}

// Append reads, extends, trims and rewrites the transcript, refreshing
// the TTL.
func (rs *RedisStore) Append(ctx context.Context, sessionID string, turns ...models.ChatTurn) error {
	key := rs.key(sessionID)

	var existing []models.ChatTurn
	data, err := rs.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &existing); err != nil {
			existing = nil
		}
	case errors.Is(err, redis.Nil):
		// new session
	default:
		return fmt.Errorf("session get %s: %w", sessionID, err)
	}

	existing = append(existing, turns...)
	if len(existing) > maxTurns {
		existing = existing[len(existing)-maxTurns:]
	}

	payload, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	if err := rs.client.Set(ctx, key, payload, rs.ttl).Err(); err != nil {
		return fmt.Errorf("session set %s: %w", sessionID, err)
	}
	return nil
}

// Close closes the Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
