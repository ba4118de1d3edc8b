package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// LockPrefix namespaces scheduler job locks.
	LockPrefix string
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:       getEnvOrDefault("REDIS_HOST", "localhost"),
		Port:       getEnvOrDefault("REDIS_PORT", "6379"),
		Password:   getEnvOrDefault("REDIS_PASSWORD", ""),
		DB:         getEnvIntWithDefault("REDIS_DB", 0),
		LockPrefix: getEnvOrDefault("REDIS_LOCK_PREFIX", "rent:jobs:"),
	}
}

func (c *RedisConfig) GetClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Password: c.Password,
		DB:       c.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
