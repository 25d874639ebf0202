package config

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the configured Redis server.
// It returns nil when Redis is not configured or unreachable so callers can
// fall back to in-process storage.
func NewRedisClient(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	var tlsConf *tls.Config
	if cfg.Redis.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("⚠️ Redis unreachable at %s, using in-memory rate limiting: %v", cfg.Redis.Addr, err)
		_ = client.Close()
		return nil
	}

	log.Infof("✅ Redis connected [%s]", cfg.Redis.Addr)
	return client
}
