package infra

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v9"

	"github.com/adroitdesign/studio-api/internal/config"
)

// Redis opens the cache client and verifies it answers.
func Redis(ctx context.Context, cfg config.RedisCfg) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to establish connection to redis - %w", err)
	}
	return client, nil
}
