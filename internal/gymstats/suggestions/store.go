package suggestions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

const (
	EntryTTL = 24 * time.Hour

	memoryStoreSize = 16 * 1024 * 1024
)

var ErrCorruptEntry = errors.New("corrupt suggestion cache entry")

// Entry is a persisted suggestion together with what it was computed from.
type Entry struct {
	Suggestion Suggestion `json:"suggestion"`
	CreatedAt  time.Time  `json:"createdAt"`
	Hash       uint64     `json:"hash"`
}

// Usable reports whether the entry is younger than EntryTTL and was built
// from inputs with the given content hash.
func (e Entry) Usable(now time.Time, hash uint64) bool {
	if e.Hash != hash {
		return false
	}
	age := now.Sub(e.CreatedAt)
	return age >= 0 && age < EntryTTL
}

// Store persists suggestions across requests. A missing entry is (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry Entry) error
}

func storeKey(userID, exerciseID string, targetReps int) string {
	return fmt.Sprintf("suggestion::%s::%s::%d", userID, exerciseID, targetReps)
}

type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Entry, error) {
	cmd := s.redisClient.Get(ctx, key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	entry := &Entry{}
	if err := json.Unmarshal([]byte(cmd.Val()), entry); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptEntry, err)
	}
	return entry, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, entry Entry) error {
	entryBytes, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	if err := s.redisClient.Set(ctx, key, entryBytes, EntryTTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// MemoryStore keeps entries in process, for single instance setups without redis.
type MemoryStore struct {
	cache *freecache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: freecache.NewCache(memoryStoreSize),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	entryBytes, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	entry := &Entry{}
	if err := json.Unmarshal(entryBytes, entry); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptEntry, err)
	}
	return entry, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry) error {
	entryBytes, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	return s.cache.Set([]byte(key), entryBytes, int(EntryTTL.Seconds()))
}

