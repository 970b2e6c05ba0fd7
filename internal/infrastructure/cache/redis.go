package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"jobmatch/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultTTL = 600 * time.Second

	JobListKey      = "jobs:list"
	jobItemPrefix   = "jobs:item:"
	jobItemPattern  = jobItemPrefix + "*"
	pingTimeout     = 2 * time.Second
	unavailableText = "redis unavailable, bypassing cache"
)

var ErrUnavailable = errors.New("redis unavailable")

func JobItemKey(id string) string {
	return jobItemPrefix + id
}

// Redis is a JSON cache that degrades to a no-op when the server cannot be
// reached. A nil *Redis is valid and always misses.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) *Redis {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("cache")

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		log.Info("redis address not set, cache disabled")
		return &Redis{ttl: ttl, logger: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn(unavailableText, zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return &Redis{ttl: ttl, logger: log}
	}

	log.Info("redis connected", zap.String("addr", addr), zap.Duration("ttl", ttl))
	return &Redis{client: client, ttl: ttl, logger: log}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn(unavailableText, zap.Error(err))
	}
}

func (r *Redis) Enabled() bool {
	return !r.isUnavailable()
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

// GetJSON reports whether key was found and decoded into out.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if r.isUnavailable() || len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := r.client.Del(ctx, k).Err(); err != nil {
			r.logger.Warn("redis delete failed", zap.String("key", k), zap.String("pattern", pattern), zap.Error(err))
		}
	}
	return iter.Err()
}

// InvalidateJobs drops the list and every cached job item.
func (r *Redis) InvalidateJobs(ctx context.Context) error {
	if r.isUnavailable() {
		return nil
	}
	var firstErr error
	if err := r.Delete(ctx, JobListKey); err != nil {
		firstErr = err
	}
	if err := r.DeleteByPattern(ctx, jobItemPattern); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
