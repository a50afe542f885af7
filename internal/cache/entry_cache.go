package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "entries:list:"

// EntryCache caches per-owner entry listings in Redis.
type EntryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewEntryCache returns a new EntryCache.
func NewEntryCache(rdb *redis.Client, ttl time.Duration) *EntryCache {
	return &EntryCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached listing for ownerID, or nil if miss.
func (c *EntryCache) GetList(ctx context.Context, ownerID int64) ([]dom.Entry, error) {
	b, err := c.rdb.Get(ctx, listKey(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Entry
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the listing for ownerID.
func (c *EntryCache) SetList(ctx context.Context, ownerID int64, list []dom.Entry) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(ownerID), b, c.ttl).Err()
}

// Invalidate removes the cached listing for ownerID (called on write).
func (c *EntryCache) Invalidate(ctx context.Context, ownerID int64) error {
	return c.rdb.Del(ctx, listKey(ownerID)).Err()
}

func listKey(ownerID int64) string {
	return keyListPrefix + strconv.FormatInt(ownerID, 10)
}
