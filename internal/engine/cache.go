// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// cache.go memoizes Markdown conversions of property copy. The catalog is
// immutable, so an entry never goes stale for the life of the process.
package engine

import (
	"log/slog"
	"sync"

	"coffeebloom/internal/markdown"
)

// copyCache is a concurrency-safe in-memory cache of converted copy,
// keyed by the Markdown source itself.
type copyCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func newCopyCache() *copyCache {
	return &copyCache{entries: make(map[string]string)}
}

// html returns the HTML for source, converting it on first use.
func (c *copyCache) html(source string) string {
	c.mu.RLock()
	out, ok := c.entries[source]
	c.mu.RUnlock()
	if ok {
		return out
	}

	out = markdown.MustHTML(source)

	c.mu.Lock()
	c.entries[source] = out
	size := len(c.entries)
	c.mu.Unlock()
	slog.Debug("copy cached", "size", size)
	return out
}

func (c *copyCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var longCopy = newCopyCache()
