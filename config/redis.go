package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"tour-booking-api/config/common"
)

// NewRedis returns nil when REDIS_ADDR is unset; the session repository then runs as a no-op.
func NewRedis(cfg *common.Config, log *logrus.Logger) *redis.Client {
	addr, password, db := cfg.GetRedisConfig()
	if addr == "" {
		log.Warn("REDIS_ADDR is empty, session revocation is disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatalf("unable to ping redis at %s", addr)
	}
	return client
}
