package session

import (
	"context"
	"fmt"
	"time"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/accounts"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/config"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "tutoria:revoked:"

type redisRevocationStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisRevocationStore connects to Redis and returns a RevocationStore
// shared by every API replica
func NewRedisRevocationStore(ctx context.Context, settings *config.SessionStoreSettings, logger logger.Logger) (accounts.RevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis session store", "addr", settings.Addr, "db", settings.DB)
	return newRedisRevocationStore(client, logger), nil
}

func newRedisRevocationStore(client *redis.Client, logger logger.Logger) *redisRevocationStore {
	return &redisRevocationStore{client: client, logger: logger}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to look up revoked token: %w", err)
	}
	return n > 0, nil
}
