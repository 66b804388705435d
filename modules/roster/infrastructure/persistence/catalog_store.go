package persistence

import (
	"context"
	"sync"

	gerrors "github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"

	"github.com/iota-uz/roster/modules/roster/catalog"
	"github.com/iota-uz/roster/pkg/configuration"
)

// RedisCatalogStore keeps the tag-color mapping in a single Redis hash, one
// field per tag. Malformed values are not filtered here; the catalog falls
// back to derived colors on load.
type RedisCatalogStore struct {
	redis *redis.Client
	key   string
}

func NewRedisCatalogStore(client *redis.Client, key string) *RedisCatalogStore {
	return &RedisCatalogStore{redis: client, key: key}
}

// NewRedisCatalogStoreFromConfig dials Redis with the address and hash key
// from the environment-backed options.
func NewRedisCatalogStoreFromConfig(opts configuration.CatalogStoreOptions) *RedisCatalogStore {
	client := redis.NewClient(&redis.Options{Addr: opts.RedisURL})
	return NewRedisCatalogStore(client, opts.RedisKey)
}

func (s *RedisCatalogStore) Load(ctx context.Context) (map[string]string, error) {
	colors, err := s.redis.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, gerrors.Wrap(err, "load tag catalog")
	}
	return colors, nil
}

func (s *RedisCatalogStore) Save(ctx context.Context, colors map[string]string) error {
	pipe := s.redis.TxPipeline()
	// Full rewrite: deleted tags must not survive in the hash.
	pipe.Del(ctx, s.key)
	if len(colors) > 0 {
		flat := make([]interface{}, 0, len(colors)*2)
		for text, color := range colors {
			flat = append(flat, text, color)
		}
		pipe.HSet(ctx, s.key, flat...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return gerrors.Wrap(err, "save tag catalog")
	}
	return nil
}

// MemoryCatalogStore is the in-process fallback used by tests and
// single-binary deployments without Redis.
type MemoryCatalogStore struct {
	mu     sync.Mutex
	colors map[string]string
}

func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{colors: map[string]string{}}
}

func (s *MemoryCatalogStore) Load(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.colors))
	for text, color := range s.colors {
		out[text] = color
	}
	return out, nil
}

func (s *MemoryCatalogStore) Save(ctx context.Context, colors map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.colors = make(map[string]string, len(colors))
	for text, color := range colors {
		s.colors[text] = color
	}
	return nil
}

var (
	_ catalog.Store = (*RedisCatalogStore)(nil)
	_ catalog.Store = (*MemoryCatalogStore)(nil)
)
