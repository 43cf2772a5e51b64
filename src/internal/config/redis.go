package config

import (
	"context"
	"fmt"

	"fleet-service/src/pkg/log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// NewRedis returns nil when caching is disabled; the use cases treat a nil
// client as cache-off.
func NewRedis(v *viper.Viper, logger log.Log) redis.UniversalClient {
	if !v.GetBool("redis.enabled") {
		logger.Info("redis-config", "redis cache is disabled in configuration", "redis", "")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", v.GetString("redis.host"), v.GetInt("redis.port")),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Error("redis-config", fmt.Sprintf("failed to connect to redis: %v", err), "redis", "")
		return nil
	}
	return client
}
