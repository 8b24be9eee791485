// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"coffeebloom/internal/metrics"
	"coffeebloom/internal/models"
)

const (
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache stores rendered page HTML per (mode, page, variant). Only pages
// without an open overlay are cached, since overlays depend on the visitor.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// PageKey returns the cache key for one rendering of a page. Variant
// distinguishes the full document from the HTMX fragment.
func PageKey(mode models.Mode, page models.PageID, variant string) string {
	return strings.ToLower(string(mode)) + ":" + string(page) + ":" + variant
}

// Get returns cached HTML for key. A Valkey failure counts as a miss.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveCache("page", "miss")
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "key", key, "error", err)
		metrics.ObserveCache("page", "miss")
		return nil, false
	}
	metrics.ObserveCache("page", "hit")
	slog.Debug("page cache hit", "key", key)
	return val, true
}

func (pc *PageCache) Set(ctx context.Context, key string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+key, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "key", key, "error", err)
		return
	}
	metrics.ObserveCache("page", "set")
}

// InvalidateAll removes all cached pages. Used at startup, since the
// embedded catalog may have changed between deploys.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	pc.invalidate(ctx, pageKeyPrefix+"*")
}

func (pc *PageCache) invalidate(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := pc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "pattern", pattern, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		metrics.ObserveCache("page", "del")
		slog.Info("page cache cleared", "pattern", pattern, "deleted", deleted)
	}
}
