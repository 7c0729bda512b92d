package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func errEnv(name string) error {
	return errors.New(name + " environment variable is not set")
}

// InitRedis connects the cache. Callers decide whether a missing REDIS_ADDR
// is fatal; the roster endpoint works uncached.
func InitRedis() error {
	val := os.Getenv("REDIS_ADDR")
	if val == "" {
		val = os.Getenv("REDIS_URL")
	}
	if val == "" {
		return errEnv("REDIS_ADDR")
	}

	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return err
		}
		RedisClient = redis.NewClient(opt)
	} else {
		RedisClient = redis.NewClient(&redis.Options{Addr: val})
	}

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
