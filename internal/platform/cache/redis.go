package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propview/properties-backend/internal/pkg/logger"
)

// Service is a read-through accelerator in front of the store. A nil
// *Service is valid and disables caching; every method degrades to a no-op
// or a miss, and redis failures are logged at debug and swallowed.
type Service struct {
	client *redis.Client
	log    *logger.Logger
	ttl    time.Duration
}

func New(log *logger.Logger, addr, password string, ttl time.Duration) *Service {
	if addr == "" {
		log.Info("REDIS_ADDR not set, response caching disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &Service{
		client: client,
		log:    log.With("service", "CacheService"),
		ttl:    ttl,
	}
}

func (s *Service) Get(ctx context.Context, key string, dest interface{}) bool {
	if s == nil {
		return false
	}
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.log.Debug("Cache get failed", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		s.log.Debug("Cache entry unmarshal failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) Set(ctx context.Context, key string, value interface{}) {
	if s == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Debug("Cache entry marshal failed", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.log.Debug("Cache set failed", "key", key, "error", err)
	}
}

// Generation returns the current value of a generation counter. Keys embed
// the generation, so bumping it orphans every older entry; the orphans age
// out via TTL without any scan.
func (s *Service) Generation(ctx context.Context, counter string) int64 {
	if s == nil {
		return 0
	}
	gen, err := s.client.Get(ctx, counter).Int64()
	if err != nil && err != redis.Nil {
		s.log.Debug("Cache generation read failed", "counter", counter, "error", err)
	}
	return gen
}

func (s *Service) Bump(ctx context.Context, counter string) {
	if s == nil {
		return
	}
	if err := s.client.Incr(ctx, counter).Err(); err != nil {
		s.log.Debug("Cache generation bump failed", "counter", counter, "error", err)
	}
}

// QueryKey hashes a sorted parameter map into a stable cache key suffix.
func QueryKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
