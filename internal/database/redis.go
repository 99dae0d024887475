package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"travel-crm-api/internal/config"
)

var redisClient *redis.Client

// InitRedis connects the shared Redis client used for the pipeline summary
// cache. The server runs without Redis when the connection fails.
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	var client *redis.Client

	// A redis:// URL takes precedence over host settings
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established successfully",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
	)
	return nil
}

// GetRedis returns the shared Redis client, or nil when Redis is unavailable
func GetRedis() *redis.Client {
	return redisClient
}
