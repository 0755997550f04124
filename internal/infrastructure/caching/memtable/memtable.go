package memtable

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/coocood/freecache"
)

// MemTable is an in-process JSON cache used when no Redis is configured.
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size bytes (freecache enforces a 512 KiB floor).
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

func (m *MemTable) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := m.cache.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores val for ttl rounded up to whole seconds; ttl <= 0 never expires.
// Entries larger than 1/1024 of the cache size are rejected by freecache.
func (m *MemTable) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	expire := 0
	if ttl > 0 {
		expire = int(math.Ceil(ttl.Seconds()))
	}
	return m.cache.Set([]byte(key), data, expire)
}

func (m *MemTable) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		m.cache.Del([]byte(k))
	}
	return nil
}

func (m *MemTable) Len() int64 { return m.cache.EntryCount() }
