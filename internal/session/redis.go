package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/kurochkinivan/results_portal/internal/config"
	"github.com/kurochkinivan/results_portal/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "results_portal:session:"

// RedisStore shares temporary sessions between instances. Redis expires the keys itself,
// so Sweep has nothing to do.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to ping redis: %w", err), client.Close())
	}

	return client, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
	}
}

func (r *RedisStore) Set(ctx context.Context, s *domain.TempSession) error {
	ttl := s.ExpiryTime.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, keyPrefix+s.TempID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (r *RedisStore) Get(ctx context.Context, tempID string) (*domain.TempSession, error) {
	return r.decode(r.client.Get(ctx, keyPrefix+tempID).Bytes())
}

func (r *RedisStore) Take(ctx context.Context, tempID string) (*domain.TempSession, error) {
	return r.decode(r.client.GetDel(ctx, keyPrefix+tempID).Bytes())
}

func (r *RedisStore) decode(payload []byte, err error) (*domain.TempSession, error) {
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s domain.TempSession
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if s.Expired(r.now()) {
		return nil, domain.ErrSessionNotFound
	}

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, tempID string) error {
	if err := r.client.Del(ctx, keyPrefix+tempID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *RedisStore) Sweep(context.Context, time.Time) ([]*domain.TempSession, error) {
	return nil, nil
}
