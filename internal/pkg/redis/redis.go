package redis

import (
	"context"
	"fmt"
	"log"

	"reservation-service/config"

	"github.com/redis/go-redis/v9"
)

func SetupClient(cfg *config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("error connect redis: %v", err)
	}

	return client
}
