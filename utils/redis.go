package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/sharath018/temple-donation-docs/config"
)

// RedisClient is shared by the receipt cache and the rate limiter. It stays
// nil when REDIS_ADDR is unset.
var RedisClient *redis.Client

// InitRedis connects to Redis and pings it. An empty address leaves Redis
// disabled and is not an error.
func InitRedis(cfg *config.Config) error {
	if cfg.RedisAddr == "" {
		log.Info("📭 Redis not configured, receipt cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("ping redis at %s: %w", cfg.RedisAddr, err)
	}

	RedisClient = client
	log.Info("✅ Connected to Redis", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return nil
}

// CloseRedis closes the shared client if one was opened.
func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
