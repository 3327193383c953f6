// Package promocache puts a short-TTL Redis cache in front of the
// promotion set read on every quote. Staleness inside the TTL window is
// accepted: a promotion toggled mid-checkout may still apply to an
// in-flight quote.
package promocache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/henriquesilva0035/acasadapizzateste-sub000/internal/domain/promotion"
)

const (
	cacheKey = "promotions:active"
	ttl      = 30 * time.Second
)

// Source is the uncached loader, normally the promotions repo.
type Source interface {
	ListActive(ctx context.Context) ([]promotion.Promotion, error)
}

type Cache struct {
	src Source
	rdb *redis.Client
	log *slog.Logger
}

func New(src Source, rdb *redis.Client, log *slog.Logger) *Cache {
	return &Cache{src: src, rdb: rdb, log: log}
}

// ListActive serves from Redis when possible and falls through to the
// source on a miss or any Redis failure. Cache problems are logged, never
// surfaced: pricing must keep working without Redis.
func (c *Cache) ListActive(ctx context.Context) ([]promotion.Promotion, error) {
	payload, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var promos []promotion.Promotion
		if err := json.Unmarshal(payload, &promos); err == nil {
			return promos, nil
		}
		c.log.Warn("discarding unreadable promotion cache entry")
	} else if err != redis.Nil {
		c.log.Warn("promotion cache read failed", "err", err)
	}

	promos, err := c.src.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(promos); err == nil {
		if err := c.rdb.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
			c.log.Warn("promotion cache write failed", "err", err)
		}
	}
	return promos, nil
}

// Invalidate drops the cached set after an admin edit.
func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, cacheKey).Err(); err != nil {
		c.log.Warn("promotion cache invalidate failed", "err", err)
	}
}
