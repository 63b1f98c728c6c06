package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/reqtrackhq/reqtrack-api/internal/models"
)

// RedisGateway persists the store blob under one key and the role flag under
// a second key, matching the original two-entry persisted state.
type RedisGateway struct {
	client  *redis.Client
	blobKey string
	roleKey string
	logger  *zap.Logger
}

// NewRedisGateway constructs a redis-backed gateway.
func NewRedisGateway(client *redis.Client, blobKey, roleKey string, logger *zap.Logger) *RedisGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisGateway{client: client, blobKey: blobKey, roleKey: roleKey, logger: logger}
}

// Load fetches the blob, reseeding on absence or parse failure.
func (g *RedisGateway) Load(ctx context.Context) (*models.Store, error) {
	raw, err := g.client.Get(ctx, g.blobKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return g.reseed(ctx)
		}
		return nil, fmt.Errorf("redis get %s: %w", g.blobKey, err)
	}

	s, err := decodeStore(raw)
	if err != nil {
		g.logger.Warn("store blob corrupt, reseeding", zap.String("key", g.blobKey), zap.Error(err))
		return g.reseed(ctx)
	}
	return s, nil
}

// Save rewrites the entire blob.
func (g *RedisGateway) Save(ctx context.Context, s *models.Store) error {
	raw, err := encodeStore(s)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := g.client.Set(ctx, g.blobKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", g.blobKey, err)
	}
	return nil
}

// LoadRole reads the session role flag; a missing key means requester mode.
func (g *RedisGateway) LoadRole(ctx context.Context) (bool, error) {
	raw, err := g.client.Get(ctx, g.roleKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", g.roleKey, err)
	}
	return decodeRole(raw), nil
}

// SaveRole writes the session role flag.
func (g *RedisGateway) SaveRole(ctx context.Context, admin bool) error {
	if err := g.client.Set(ctx, g.roleKey, encodeRole(admin), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", g.roleKey, err)
	}
	return nil
}

// Reset discards the persisted blob and reinstalls the fixtures.
func (g *RedisGateway) Reset(ctx context.Context) (*models.Store, error) {
	return g.reseed(ctx)
}

func (g *RedisGateway) reseed(ctx context.Context) (*models.Store, error) {
	s := Seed()
	if err := g.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
